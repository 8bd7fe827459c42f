package mysql

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"moodmate/be/biz/config"
	"moodmate/be/biz/model/storage"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/glebarez/sqlite"
	mysqldriver "github.com/go-sql-driver/mysql"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to MySQL, or to sqlite when conf.SQLitePath is set (local
// runs and tests), and migrates the service tables.
func Open(conf config.MySQLConf) (*gorm.DB, error) {
	gormConf := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}

	var dialector gorm.Dialector
	if conf.SQLitePath != "" {
		dialector = sqlite.Open(conf.SQLitePath)
	} else {
		dialector = gormmysql.Open(DSN(conf))
	}

	db, err := gorm.Open(dialector, gormConf)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if conf.SQLitePath != "" {
		// an in-memory sqlite database lives and dies with its connection
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(defaultInt(conf.MaxOpenConns, 50))
		sqlDB.SetMaxIdleConns(defaultInt(conf.MaxIdleConns, 10))
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if err := db.AutoMigrate(storage.Models()...); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	hlog.Infof("db connected, sqlite=%v", conf.SQLitePath != "")
	return db, nil
}

func DSN(conf config.MySQLConf) string {
	c := mysqldriver.NewConfig()
	c.User = conf.Username
	c.Passwd = conf.Password
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(conf.IP, strconv.Itoa(conf.Port))
	c.DBName = conf.DBName
	c.ParseTime = true
	c.Loc = time.Local
	// report matched rather than changed rows so an idempotent update is not
	// mistaken for a missing record
	c.ClientFoundRows = true
	c.Params = map[string]string{"charset": "utf8mb4"}
	return c.FormatDSN()
}

func defaultInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
