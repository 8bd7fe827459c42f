package db

import (
	"context"
	"fmt"

	"moodmate/be/biz/config"
	"moodmate/be/biz/db/mysql"
	"moodmate/be/biz/db/redis"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Conns struct {
	DB    *gorm.DB
	Redis *goredis.Client
}

// Open establishes the relational store and the redis connection.
func Open(ctx context.Context, conf *config.ServiceConf) (*Conns, error) {
	gdb, err := mysql.Open(conf.MySQL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(conf.Redis)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis %s: %w", rdb.Options().Addr, err)
	}

	return &Conns{DB: gdb, Redis: rdb}, nil
}

func (c *Conns) Close() error {
	var firstErr error
	if sqlDB, err := c.DB.DB(); err == nil {
		firstErr = sqlDB.Close()
	}
	if err := c.Redis.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
