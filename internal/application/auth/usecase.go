// Package auth autentica al personal contra la colección remota de empleados.
// El servicio no crea cuentas: el alta vive en el servicio de registros y aquí
// solo se verifica el hash y se emite el token.
package auth

import (
	"context"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/comercio-dashboard/internal/application/dto"
	"github.com/jhoicas/comercio-dashboard/internal/domain"
	"github.com/jhoicas/comercio-dashboard/internal/domain/entity"
	"github.com/jhoicas/comercio-dashboard/internal/domain/repository"
	"github.com/jhoicas/comercio-dashboard/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// LoginUseCase caso de uso de login.
type LoginUseCase struct {
	store  repository.CollectionStore
	jwtCfg JWTConfig
}

// NewLoginUseCase construye el caso de uso.
func NewLoginUseCase(store repository.CollectionStore, jwtCfg JWTConfig) *LoginUseCase {
	return &LoginUseCase{store: store, jwtCfg: jwtCfg}
}

// Login busca el username en el snapshot de personal, verifica el hash bcrypt
// y emite el JWT. Usuario inexistente y contraseña incorrecta devuelven el
// mismo ErrUnauthorized para no filtrar cuál de los dos falló.
func (uc *LoginUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	staff, err := uc.store.Staff(ctx)
	if err != nil {
		return nil, err
	}

	member, ok := findByUsername(staff, in.Username)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if member.Status != "active" {
		return nil, domain.ErrForbidden
	}

	token, err := jwt.Generate(
		uc.jwtCfg.Secret,
		strconv.FormatInt(member.ID, 10),
		member.Username,
		member.Role,
		uc.jwtCfg.Issuer,
		uc.jwtCfg.ExpMinutes,
	)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User: dto.StaffMemberDTO{
			ID:       member.ID,
			Username: member.Username,
			Name:     member.Name,
			Role:     member.Role,
		},
	}, nil
}

func findByUsername(staff []entity.StaffMember, username string) (entity.StaffMember, bool) {
	for _, m := range staff {
		if m.Username == username {
			return m, true
		}
	}
	return entity.StaffMember{}, false
}
