package usecase

import (
	"context"

	"github.com/Hannia06H/ProyectoArq/internal/application/dto"
	"github.com/Hannia06H/ProyectoArq/internal/domain/repository"
)

// ReportUseCase reportes tabulares. Solo produce los datos; el formato de
// presentación (tabla, Excel) es responsabilidad del cliente.
type ReportUseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository) *ReportUseCase {
	return &ReportUseCase{userRepo: userRepo, roleRepo: roleRepo}
}

// UserReport devuelve una fila por usuario con rol, fecha de registro y
// último acceso ("Nunca" si no ha iniciado sesión).
func (uc *ReportUseCase) UserReport(ctx context.Context) ([]dto.UserReportRow, error) {
	users, err := uc.userRepo.List(ctx, repository.UserFilter{})
	if err != nil {
		return nil, err
	}
	roles, err := uc.roleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	roleNames := make(map[string]string, len(roles))
	for _, r := range roles {
		roleNames[r.ID] = r.Nombre
	}

	const fechaFmt = "02/01/2006"
	out := make([]dto.UserReportRow, 0, len(users))
	for _, u := range users {
		ultimo := "Nunca"
		if u.UltimoAcceso != nil {
			ultimo = u.UltimoAcceso.Format(fechaFmt)
		}
		out = append(out, dto.UserReportRow{
			ID:            u.ID,
			Email:         u.Email,
			Rol:           roleNames[u.RoleID],
			FechaRegistro: u.CreatedAt.Format(fechaFmt),
			UltimoAcceso:  ultimo,
		})
	}
	return out, nil
}
