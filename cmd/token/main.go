package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/pkg/middleware"
)

// Emite um token de acesso à API assinado com AUTH_SECRET
func main() {
	subject := flag.StringP("subject", "s", "", "Identificação do usuário (ex.: e-mail)")
	role := flag.String("role", middleware.RoleAnalyst, "Papel do usuário: admin ou analyst")
	ttl := flag.Duration("ttl", 24*time.Hour, "Validade do token")
	flag.Parse()

	if *subject == "" {
		flag.Usage()
		os.Exit(2)
	}

	if *role != middleware.RoleAdmin && *role != middleware.RoleAnalyst {
		logrus.Fatalf("Papel inválido: %s", *role)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	token, err := middleware.GenerateToken(cfg.Auth.Secret, *subject, *role, *ttl)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar token")
	}

	fmt.Println(token)
}
