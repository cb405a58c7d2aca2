// Comando de inicialización de roles. Crea los tres roles del sistema si no
// existen todavía; es idempotente y seguro de ejecutar varias veces.
//
//	go run ./cmd/seed_roles
package main

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Hannia06H/ProyectoArq/internal/domain/entity"
	"github.com/Hannia06H/ProyectoArq/internal/infrastructure/postgres"
	"github.com/Hannia06H/ProyectoArq/pkg/config"
	"github.com/Hannia06H/ProyectoArq/pkg/logger"
)

var seedRoles = []entity.Role{
	{
		Nombre:      entity.RoleAdministrador,
		Descripcion: "Acceso completo al sistema",
		Permisos:    []string{"usuarios", "roles", "ventas", "reportes", "productos"},
	},
	{
		Nombre:      entity.RoleVendedor,
		Descripcion: "Puede gestionar ventas",
		Permisos:    []string{"ventas", "productos"},
	},
	{
		Nombre:      entity.RoleConsultor,
		Descripcion: "Solo puede visualizar reportes",
		Permisos:    []string{"ventas:lectura", "reportes", "productos"},
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	roleRepo := postgres.NewRoleRepository(pool)

	for _, r := range seedRoles {
		existing, err := roleRepo.GetByNombre(ctx, r.Nombre)
		if err != nil {
			log.Fatal().Err(err).Str("rol", r.Nombre).Msg("consultar rol")
		}
		if existing != nil {
			log.Info().Str("rol", r.Nombre).Msg("rol ya existe, se omite")
			continue
		}

		role := r
		role.ID = uuid.NewString()
		if err := roleRepo.Create(ctx, &role); err != nil {
			log.Fatal().Err(err).Str("rol", role.Nombre).Msg("crear rol")
		}
		log.Info().Str("rol", role.Nombre).Str("id", role.ID).Msg("rol creado")
	}

	log.Info().Msg("inicialización de roles completada")
}
