package services

import (
	"context"
	"errors"
	"mime/multipart"

	"jits_backend/internal/logger"
	"jits_backend/internal/models"
	"jits_backend/internal/repositories"
	"jits_backend/pkg/apperrors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ============================================
// ЖИЗНЕННЫЙ ЦИКЛ КОНТЕНТНЫХ СУЩНОСТЕЙ
// ============================================

// EntitySchema - описание типа сущности для общего жизненного цикла
type EntitySchema struct {
	Domain           string
	DuplicateMessage string
	NotFoundMessage  string
	// ConcurrentUploads - файлы загружаются параллельно (категории услуг)
	ConcurrentUploads bool
}

// Attachment - файл из формы, который нужно загрузить и привязать к записи
type Attachment struct {
	Field           string
	File            *multipart.FileHeader
	Folder          string
	Policy          UploadPolicy
	Required        bool
	RequiredMessage string
	// BestEffort - ошибка загрузки логируется, запись сохраняется без файла
	BestEffort bool
	// Assign записывает ссылку в запись и возвращает ключ вытесненного блоба
	Assign func(ref *models.MediaRef) (superseded string)
}

// Changes - результат изменения записи при обновлении
type Changes struct {
	Attachments []Attachment
	// Obsolete - блобы, которые надо удалить после успешного сохранения
	Obsolete []string
}

type entityPtr[T any] interface {
	*T
	models.Entity
}

type lifecycle[T any, P entityPtr[T]] struct {
	schema EntitySchema
	repo   repositories.EntityRepository[T]
	media  MediaService
}

func newLifecycle[T any, P entityPtr[T]](schema EntitySchema, media MediaService) *lifecycle[T, P] {
	return &lifecycle[T, P]{
		schema: schema,
		repo:   repositories.NewEntityRepository[T](),
		media:  media,
	}
}

// create: обязательные файлы -> уникальность -> загрузка -> сохранение.
// Если запись не сохранилась, загруженные блобы удаляются.
func (l *lifecycle[T, P]) create(ctx context.Context, db *gorm.DB, entity P, attachments []Attachment) error {
	for _, a := range attachments {
		if a.Required && a.File == nil {
			return apperrors.Validation(l.schema.Domain, a.RequiredMessage)
		}
	}

	if err := l.ensureUnique(db, entity, ""); err != nil {
		return err
	}

	uploaded, _, err := l.uploadAll(ctx, attachments)
	if err != nil {
		return err
	}

	if err := l.repo.Create(db, (*T)(entity)); err != nil {
		l.media.DeleteAll(ctx, uploaded)
		return l.persistError(err)
	}

	logger.CtxInfo(ctx, "Entity created", "domain", l.schema.Domain, "id", entity.GetID(), "uploads", len(uploaded))
	return nil
}

// update: mutate применяет частичные изменения и описывает новые файлы.
// Старые блобы удаляются только после успешного сохранения.
func (l *lifecycle[T, P]) update(ctx context.Context, db *gorm.DB, id string, mutate func(entity P) (Changes, error)) (P, error) {
	entity, err := l.get(db, id)
	if err != nil {
		return nil, err
	}

	changes, err := mutate(entity)
	if err != nil {
		return nil, err
	}

	if err := l.ensureUnique(db, entity, id); err != nil {
		return nil, err
	}

	uploaded, superseded, err := l.uploadAll(ctx, changes.Attachments)
	if err != nil {
		return nil, err
	}

	if err := l.repo.Save(db, (*T)(entity)); err != nil {
		l.media.DeleteAll(ctx, uploaded)
		return nil, l.persistError(err)
	}

	l.media.DeleteAll(ctx, append(changes.Obsolete, superseded...))

	logger.CtxInfo(ctx, "Entity updated", "domain", l.schema.Domain, "id", id, "uploads", len(uploaded))
	return entity, nil
}

// delete: сначала блобы (ошибки только в лог), потом запись
func (l *lifecycle[T, P]) delete(ctx context.Context, db *gorm.DB, id string) error {
	entity, err := l.get(db, id)
	if err != nil {
		return err
	}

	l.media.DeleteAll(ctx, entity.MediaKeys())

	if err := l.repo.Delete(db, (*T)(entity)); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return apperrors.NotFound(l.schema.Domain, l.schema.NotFoundMessage)
		}
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Entity deleted", "domain", l.schema.Domain, "id", id)
	return nil
}

func (l *lifecycle[T, P]) get(db *gorm.DB, id string) (P, error) {
	return l.findOne(db, repositories.Where("id = ?", id))
}

func (l *lifecycle[T, P]) findOne(db *gorm.DB, scopes ...repositories.Scope) (P, error) {
	entity, err := l.repo.FindOne(db, scopes...)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.NotFound(l.schema.Domain, l.schema.NotFoundMessage)
		}
		return nil, apperrors.InternalError(err)
	}
	return P(entity), nil
}

func (l *lifecycle[T, P]) list(db *gorm.DB, scopes ...repositories.Scope) ([]T, error) {
	items, err := l.repo.List(db, scopes...)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (l *lifecycle[T, P]) count(db *gorm.DB, scopes ...repositories.Scope) (int64, error) {
	total, err := l.repo.Count(db, scopes...)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return total, nil
}

// ensureUnique проверяет уникальные колонки до загрузки файлов
func (l *lifecycle[T, P]) ensureUnique(db *gorm.DB, entity P, excludeID string) error {
	fields := entity.UniqueKeys()
	if len(fields) == 0 {
		return nil
	}
	exists, err := l.repo.ExistsAny(db, fields, excludeID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if exists {
		return apperrors.Duplicate(l.schema.Domain, l.schema.DuplicateMessage)
	}
	return nil
}

// persistError - гонка на уникальном индексе тоже DuplicateEntity
func (l *lifecycle[T, P]) persistError(err error) error {
	if errors.Is(err, repositories.ErrDuplicate) {
		return apperrors.Duplicate(l.schema.Domain, l.schema.DuplicateMessage)
	}
	return apperrors.InternalError(err)
}

// uploadAll загружает файлы вложений. Ссылки привязываются к записи только
// после того, как все обязательные загрузки прошли. При ошибке уже загруженное
// удаляется.
func (l *lifecycle[T, P]) uploadAll(ctx context.Context, attachments []Attachment) (uploaded, superseded []string, err error) {
	refs := make([]*models.MediaRef, len(attachments))

	upload := func(ctx context.Context, i int) error {
		a := attachments[i]
		if a.File == nil {
			return nil
		}
		ref, err := l.media.Upload(ctx, a.Folder, a.Policy, a.File)
		if err != nil {
			if a.BestEffort {
				logger.CtxWithError(ctx, "Optional upload failed, skipping", err,
					"domain", l.schema.Domain, "field", a.Field)
				return nil
			}
			return err
		}
		refs[i] = ref
		return nil
	}

	if l.schema.ConcurrentUploads {
		g, gctx := errgroup.WithContext(ctx)
		for i := range attachments {
			g.Go(func() error { return upload(gctx, i) })
		}
		err = g.Wait()
	} else {
		for i := range attachments {
			if err = upload(ctx, i); err != nil {
				break
			}
		}
	}

	for _, ref := range refs {
		if ref != nil {
			uploaded = append(uploaded, ref.Key)
		}
	}

	if err != nil {
		l.media.DeleteAll(ctx, uploaded)
		return nil, nil, err
	}

	for i, ref := range refs {
		if ref == nil {
			continue
		}
		if old := attachments[i].Assign(ref); old != "" && old != ref.Key {
			superseded = append(superseded, old)
		}
	}
	return uploaded, superseded, nil
}
