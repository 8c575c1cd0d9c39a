package auth

import (
	"time"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
	"github.com/jhoicas/supermercado-api/pkg/jwt"
	"github.com/jhoicas/supermercado-api/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
	Audience   string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password contra el usuario activo, genera el JWT y
// retorna token + usuario + expiración. Credenciales malas, usuario inexistente
// y usuario dado de baja responden el mismo ErrUnauthorized: no se filtra cuál
// de las tres condiciones falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := uc.usuarioRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if usuario == nil || !usuario.Activo {
		return nil, domain.ErrUnauthorized
	}
	if !password.Verify(in.Password, usuario.PasswordHash) {
		return nil, domain.ErrUnauthorized
	}
	token, exp, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Nombre, usuario.Email, usuario.Rol,
		uc.jwtCfg.Issuer, uc.jwtCfg.Audience, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:      token,
		Usuario:    *ToUsuarioResponse(usuario),
		Expiration: exp,
	}, nil
}

// Register crea un usuario: valida unicidad del email (exacta, contra todos los
// registros incluidos los inactivos), hashea el password y persiste.
func (uc *AuthUseCase) Register(in dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	exists, err := uc.usuarioRepo.ExistsByEmail(in.Email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolEmpleado
	}
	usuario := &entity.Usuario{
		Nombre:        in.Nombre,
		Email:         in.Email,
		PasswordHash:  hash,
		Rol:           rol,
		FechaCreacion: time.Now(),
		Activo:        true,
	}
	if err := uc.usuarioRepo.Create(usuario); err != nil {
		return nil, err
	}
	return ToUsuarioResponse(usuario), nil
}

// ToUsuarioResponse convierte la entidad a su representación externa (sin hash).
func ToUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:            u.ID,
		Nombre:        u.Nombre,
		Email:         u.Email,
		Rol:           u.Rol,
		FechaCreacion: u.FechaCreacion,
		Activo:        u.Activo,
	}
}
