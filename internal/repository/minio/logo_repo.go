package minio

import (
	"bytes"
	"context"
	"io"

	"github.com/DRSN-tech/kiosk-printer/internal/cfg"
	"github.com/DRSN-tech/kiosk-printer/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

const noSuchKeyCode = "NoSuchKey"

// LogoRepo читает и загружает логотип ресторана в бакет MinIO.
type LogoRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
	key string
}

func NewLogoRepo(mc *minio.Client, cfg *cfg.MinIOCfg, objectKey string) *LogoRepo {
	return &LogoRepo{
		mc:  mc,
		cfg: cfg,
		key: objectKey,
	}
}

// Open возвращает содержимое объекта логотипа. Для отсутствующего объекта возвращает ErrLogoNotFound.
func (r *LogoRepo) Open(ctx context.Context) (io.ReadCloser, error) {
	obj, err := r.mc.GetObject(ctx, r.cfg.BucketName, r.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, r.wrapErr(err)
	}

	// GetObject ленивый: ошибка доступа всплывает только при первом обращении.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		return nil, r.wrapErr(err)
	}

	return obj, nil
}

// Upload кладёт логотип в бакет под настроенным ключом.
func (r *LogoRepo) Upload(ctx context.Context, data []byte, contentType string) error {
	_, err := r.mc.PutObject(
		ctx,
		r.cfg.BucketName,
		r.key,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (r *LogoRepo) wrapErr(err error) error {
	if minio.ToErrorResponse(err).Code == noSuchKeyCode {
		return e.Wrap(r.cfg.BucketName+"/"+r.key, e.ErrLogoNotFound)
	}

	return e.Wrap(whereami.WhereAmI(), err)
}
