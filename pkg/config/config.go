package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const envPath = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

type Config struct {
}

// New loads ./configs/.env once. A missing file is not an error, values
// are then taken from the process environment.
func New() *Config {
	once.Do(func() {
		err := godotenv.Load(envPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Fatal("loading envs error: ", err)
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

// GetStringOr returns def when key is unset or empty.
func (c *Config) GetStringOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) GetInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatal("parsing int env " + key + " error: " + err.Error())
	}
	return n
}

// Location resolves APP_TIMEZONE. UTC when unset.
func (c *Config) Location() *time.Location {
	name := os.Getenv("APP_TIMEZONE")
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Fatal("loading timezone " + name + " error: " + err.Error())
	}
	return loc
}
