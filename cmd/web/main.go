// @title           JITS API
// @version         1.0
// @description     API сайта Jharkhand IT Solutions: блог, курсы, услуги, студенты, отзывы.
// @contact.name    Jharkhand IT Solutions
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:5000
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization

package main

import "jits_backend/internal/app"

func main() {
	app.Run()
}
