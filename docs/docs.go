// Package docs - Swagger-описание API.
// Пересобирается из аннотаций хэндлеров: swag init -g cmd/web/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Jharkhand IT Solutions"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {"get": {"tags": ["system"], "summary": "Проверка доступности", "responses": {"200": {"description": "OK"}}}},
        "/api/auth/signup": {"post": {"tags": ["auth"], "summary": "Регистрация", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}},
        "/api/auth/login": {"post": {"tags": ["auth"], "summary": "Вход, ставит cookie token", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/api/auth/logout": {"post": {"tags": ["auth"], "summary": "Выход, очищает cookie token", "responses": {"200": {"description": "OK"}}}},
        "/api/auth/update-password": {"put": {"tags": ["auth"], "summary": "Смена пароля текущего пользователя", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}}},
        "/api/auth/request-password-reset": {"post": {"tags": ["auth"], "summary": "Запрос ссылки для сброса пароля", "responses": {"200": {"description": "OK"}}}},
        "/api/auth/reset-password/{token}": {"post": {"tags": ["auth"], "summary": "Новый пароль по токену из письма", "parameters": [{"type": "string", "name": "token", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/auth/me": {"get": {"tags": ["auth"], "summary": "Текущий пользователь", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/blogs": {"get": {"tags": ["blogs"], "summary": "Список постов", "responses": {"200": {"description": "OK"}}}},
        "/blogs/create": {"post": {"tags": ["blogs"], "summary": "Создать пост блога", "security": [{"BearerAuth": []}], "consumes": ["multipart/form-data"], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}},
        "/blogs/slug/{slug}": {"get": {"tags": ["blogs"], "summary": "Пост по slug", "parameters": [{"type": "string", "name": "slug", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/blogs/{id}": {
            "get": {"tags": ["blogs"], "summary": "Пост по id", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["blogs"], "summary": "Обновить пост", "security": [{"BearerAuth": []}], "consumes": ["multipart/form-data"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["blogs"], "summary": "Удалить пост вместе с файлом", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/courses/create": {"post": {"tags": ["courses"], "summary": "Создать курс", "security": [{"BearerAuth": []}], "consumes": ["multipart/form-data"], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}},
        "/courses/find": {"get": {"tags": ["courses"], "summary": "Все курсы, включая неактивные", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/courses/public": {"get": {"tags": ["courses"], "summary": "Активные курсы", "responses": {"200": {"description": "OK"}}}},
        "/courses/featured": {"get": {"tags": ["courses"], "summary": "Рекомендуемые активные курсы", "responses": {"200": {"description": "OK"}}}},
        "/courses/search": {"get": {"tags": ["courses"], "summary": "Поиск по активным курсам", "responses": {"200": {"description": "OK"}}}},
        "/courses/category/{category}": {"get": {"tags": ["courses"], "summary": "Активные курсы категории", "parameters": [{"type": "string", "name": "category", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/courses/{id}/rating": {"post": {"tags": ["courses"], "summary": "Оценить курс", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}},
        "/courses/{slugOrId}": {
            "get": {"tags": ["courses"], "summary": "Активный курс по slug или id", "parameters": [{"type": "string", "name": "slugOrId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["courses"], "summary": "Обновить курс", "security": [{"BearerAuth": []}], "consumes": ["multipart/form-data"], "parameters": [{"type": "string", "name": "slugOrId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["courses"], "summary": "Удалить курс вместе с обложкой", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "slugOrId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/services/create": {"post": {"tags": ["services"], "summary": "Создать категорию услуг", "security": [{"BearerAuth": []}], "consumes": ["multipart/form-data"], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}},
        "/services/find": {"get": {"tags": ["services"], "summary": "Все категории, новые первыми", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/services/public": {"get": {"tags": ["services"], "summary": "Активные категории по имени", "responses": {"200": {"description": "OK"}}}},
        "/services/{slugOrId}": {
            "get": {"tags": ["services"], "summary": "Активная категория по slug или id", "parameters": [{"type": "string", "name": "slugOrId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["services"], "summary": "Обновить категорию", "security": [{"BearerAuth": []}], "consumes": ["multipart/form-data"], "parameters": [{"type": "string", "name": "slugOrId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["services"], "summary": "Удалить категорию и все ее картинки", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "slugOrId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/students": {
            "get": {"tags": ["students"], "summary": "Список студентов с пагинацией", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["students"], "summary": "Создать профиль студента", "security": [{"BearerAuth": []}], "consumes": ["multipart/form-data"], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/students/featured": {"get": {"tags": ["students"], "summary": "Студенты с бейджами", "responses": {"200": {"description": "OK"}}}},
        "/api/students/slug/{slug}": {"get": {"tags": ["students"], "summary": "Студент по slug", "parameters": [{"type": "string", "name": "slug", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/students/specialization/{specialization}": {"get": {"tags": ["students"], "summary": "Студенты со специализацией", "parameters": [{"type": "string", "name": "specialization", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/students/{id}": {
            "get": {"tags": ["students"], "summary": "Студент по id", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["students"], "summary": "Обновить студента", "security": [{"BearerAuth": []}], "consumes": ["multipart/form-data"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["students"], "summary": "Удалить студента и его картинки", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/students/{id}/testimonials": {"post": {"tags": ["students"], "summary": "Добавить отзыв о студенте", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/students/{id}/education": {"post": {"tags": ["students"], "summary": "Добавить запись об образовании", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/testimonials": {"get": {"tags": ["testimonials"], "summary": "Отзывы по порядку отображения", "responses": {"200": {"description": "OK"}}}},
        "/testimonials/create": {"post": {"tags": ["testimonials"], "summary": "Создать отзыв", "security": [{"BearerAuth": []}], "consumes": ["multipart/form-data"], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}},
        "/testimonials/{id}": {
            "get": {"tags": ["testimonials"], "summary": "Отзыв по id", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["testimonials"], "summary": "Обновить отзыв", "security": [{"BearerAuth": []}], "consumes": ["multipart/form-data"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["testimonials"], "summary": "Удалить отзыв и его файл", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/student-success-stories": {"get": {"tags": ["student-success-stories"], "summary": "Истории успеха", "responses": {"200": {"description": "OK"}}}},
        "/student-success-stories/create": {"post": {"tags": ["student-success-stories"], "summary": "Создать историю успеха", "security": [{"BearerAuth": []}], "consumes": ["multipart/form-data"], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}},
        "/student-success-stories/{id}": {
            "get": {"tags": ["student-success-stories"], "summary": "История по id", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["student-success-stories"], "summary": "Обновить историю", "security": [{"BearerAuth": []}], "consumes": ["multipart/form-data"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["student-success-stories"], "summary": "Удалить историю и ее файлы", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "JITS API",
	Description:      "API сайта Jharkhand IT Solutions: блог, курсы, услуги, студенты, отзывы.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
