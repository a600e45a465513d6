package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrUnsupportedDriver = errors.New("unsupported database driver")

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type GormDB struct {
	DB *gorm.DB
}

// NewGormDB opens a postgres or sqlite database. An sqlite dsn is a file
// path or ":memory:".
func NewGormDB(driver, dsn string) (*GormDB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres, "":
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == DriverSQLite {
		// every sqlite connection would see its own in-memory database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql db conn: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return &GormDB{
		DB: db,
	}, nil
}

func (f *GormDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Seed inserts records, a pointer to a slice, only when their table is empty.
func (f *GormDB) Seed(ctx context.Context, records any) error {
	slice, err := sliceOf(records)
	if err != nil {
		return err
	}
	if slice.Len() == 0 {
		return nil
	}

	var count int64
	elemType := slice.Index(0).Interface()
	if err := f.DB.WithContext(ctx).Model(elemType).Count(&count).Error; err != nil {
		return fmt.Errorf("get model count: %w", err)
	}

	if count > 0 {
		return nil
	}

	if err := f.DB.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

// SaveToTable inserts records, a pointer to a slice. Rows whose primary or
// unique key already exists are left untouched.
func (f *GormDB) SaveToTable(ctx context.Context, records any) error {
	slice, err := sliceOf(records)
	if err != nil {
		return err
	}
	if slice.Len() == 0 {
		return nil
	}

	err = f.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(records).Error
	if err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

// GetAllBy loads every row matching value into entity, a pointer to a slice.
// A slice value matches any of its elements.
func (f *GormDB) GetAllBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	if kind := reflect.ValueOf(value).Kind(); kind == reflect.Slice || kind == reflect.Array {
		query = fmt.Sprintf("%s IN ?", column)
	}

	tx := f.DB.WithContext(ctx).Where(query, value).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

func (f *GormDB) Close() error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}

func sliceOf(records any) (reflect.Value, error) {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return reflect.Value{}, fmt.Errorf("records type must be pointer to a slice: %T", records)
	}
	return v.Elem(), nil
}
