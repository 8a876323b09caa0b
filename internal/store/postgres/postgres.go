package pgstore

import (
	"net/url"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/synzk/hub-backend/internal/utils/config"
)

// New opens a gorm connection pool against DATABASE_URL.
func New(appConfig *config.AppConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn(appConfig.Postgres)),
		&gorm.Config{
			NamingStrategy: schema.NamingStrategy{
				SingularTable: false,
			},
		})
	if err != nil {
		return nil, errors.Wrap(err, "connect postgres")
	}

	return db, nil
}

// dsn applies the PGSSL switch: PGSSL=0 disables TLS entirely, otherwise TLS
// is required without certificate verification. An sslmode already present in
// the URL wins.
func dsn(conn config.DBConnection) string {
	u, err := url.Parse(conn.URL)
	if err != nil {
		return conn.URL
	}

	q := u.Query()
	if q.Get("sslmode") == "" {
		if conn.DisableSSL {
			q.Set("sslmode", "disable")
		} else {
			q.Set("sslmode", "require")
		}
		u.RawQuery = q.Encode()
	}

	return u.String()
}
