package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-blog-api/config"
	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	pginfra "github.com/oksasatya/go-blog-api/internal/infrastructure/postgres"
	"github.com/oksasatya/go-blog-api/pkg/helpers"
)

type demoUser struct {
	name, email, password string
}

var demoUsers = []demoUser{
	{"Demo Author", "author@example.com", "password123"},
	{"Demo Reader", "reader@example.com", "password123"},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), pginfra.PoolOptions{MaxConns: 2, AppName: cfg.AppName + "-seed"})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	users := pginfra.NewUserRepository(pool)
	for _, d := range demoUsers {
		hash, err := helpers.HashPassword(d.password)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		u := &entity.User{Name: d.name, Email: d.email, Password: hash}
		if err := users.Create(ctx, u); err != nil {
			log.Fatalf("failed to seed user %s: %v", d.email, err)
		}
		log.Printf("seeded user: id=%s email=%s password=%s", u.ID, u.Email, d.password)
	}
}
