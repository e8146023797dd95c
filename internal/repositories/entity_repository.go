package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicate      = errors.New("duplicate record")
)

// Scope - кусок запроса, который накладывается на выборку
type Scope = func(*gorm.DB) *gorm.DB

// EntityRepository - общий репозиторий контентных сущностей.
// db передается в каждый вызов (запрос или транзакция).
type EntityRepository[T any] interface {
	FindByID(db *gorm.DB, id string) (*T, error)
	FindOne(db *gorm.DB, scopes ...Scope) (*T, error)
	// ExistsAny - есть ли запись, совпадающая хотя бы по одной колонке (кроме excludeID)
	ExistsAny(db *gorm.DB, fields map[string]string, excludeID string) (bool, error)
	Create(db *gorm.DB, entity *T) error
	Save(db *gorm.DB, entity *T) error
	Delete(db *gorm.DB, entity *T) error
	List(db *gorm.DB, scopes ...Scope) ([]T, error)
	Count(db *gorm.DB, scopes ...Scope) (int64, error)
}

type entityRepository[T any] struct{}

func NewEntityRepository[T any]() EntityRepository[T] {
	return &entityRepository[T]{}
}

func (r *entityRepository[T]) FindByID(db *gorm.DB, id string) (*T, error) {
	return r.FindOne(db, Where("id = ?", id))
}

func (r *entityRepository[T]) FindOne(db *gorm.DB, scopes ...Scope) (*T, error) {
	var entity T
	if err := db.Scopes(scopes...).First(&entity).Error; err != nil {
		return nil, translateError(err)
	}
	return &entity, nil
}

func (r *entityRepository[T]) ExistsAny(db *gorm.DB, fields map[string]string, excludeID string) (bool, error) {
	cond := db.Session(&gorm.Session{NewDB: true})
	matched := 0
	for column, value := range fields {
		if value == "" {
			continue
		}
		if matched == 0 {
			cond = cond.Where(column+" = ?", value)
		} else {
			cond = cond.Or(column+" = ?", value)
		}
		matched++
	}
	if matched == 0 {
		return false, nil
	}

	query := db.Model(new(T)).Where(cond)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *entityRepository[T]) Create(db *gorm.DB, entity *T) error {
	return translateError(db.Create(entity).Error)
}

func (r *entityRepository[T]) Save(db *gorm.DB, entity *T) error {
	return translateError(db.Save(entity).Error)
}

func (r *entityRepository[T]) Delete(db *gorm.DB, entity *T) error {
	result := db.Delete(entity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *entityRepository[T]) List(db *gorm.DB, scopes ...Scope) ([]T, error) {
	items := make([]T, 0)
	if err := db.Scopes(scopes...).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *entityRepository[T]) Count(db *gorm.DB, scopes ...Scope) (int64, error) {
	var count int64
	if err := db.Model(new(T)).Scopes(scopes...).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// translateError переводит ошибки gorm в ошибки репозитория
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrRecordNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}

// --- Scopes ---

func Where(query string, args ...interface{}) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(query, args...)
	}
}

func OrderBy(order string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(order)
	}
}

func Limit(limit int) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if limit <= 0 {
			return db
		}
		return db.Limit(limit)
	}
}

// Paginate - страницы нумеруются с 1
func Paginate(page, limit int) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		if limit <= 0 {
			return db
		}
		return db.Offset((page - 1) * limit).Limit(limit)
	}
}

// Search - регистронезависимый поиск подстроки по колонкам (через OR)
func Search(term string, columns ...string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" || len(columns) == 0 {
			return db
		}

		pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
		parts := make([]string, len(columns))
		args := make([]interface{}, len(columns))
		for i, col := range columns {
			parts[i] = "LOWER(" + col + ") LIKE ? ESCAPE '!'"
			args[i] = pattern
		}
		return db.Where("("+strings.Join(parts, " OR ")+")", args...)
	}
}

// ContainsToken - колонка содержит подстроку как есть (без учета регистра)
func ContainsToken(column, token string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		pattern := "%" + escapeLike(strings.ToLower(token)) + "%"
		return db.Where("LOWER("+column+") LIKE ? ESCAPE '!'", pattern)
	}
}

func escapeLike(s string) string {
	return strings.NewReplacer(`!`, `!!`, `%`, `!%`, `_`, `!_`).Replace(s)
}
