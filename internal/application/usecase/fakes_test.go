package usecase_test

import (
	"strings"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

// Fakes en memoria de los puertos de persistencia. Copian las reglas de
// unicidad de los repositorios reales: email exacto contra todos los
// registros, nombre en minúsculas solo contra activos.

type fakeUsuarioRepo struct {
	usuarios map[int64]*entity.Usuario
	nextID   int64
}

func newFakeUsuarioRepo(seed ...*entity.Usuario) *fakeUsuarioRepo {
	r := &fakeUsuarioRepo{usuarios: make(map[int64]*entity.Usuario), nextID: 1}
	for _, u := range seed {
		cp := *u
		if cp.ID == 0 {
			cp.ID = r.nextID
		}
		if cp.ID >= r.nextID {
			r.nextID = cp.ID + 1
		}
		r.usuarios[cp.ID] = &cp
	}
	return r
}

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	u.ID = r.nextID
	r.nextID++
	cp := *u
	r.usuarios[u.ID] = &cp
	return nil
}

func (r *fakeUsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) ExistsByEmail(email string, excludeID int64) (bool, error) {
	for _, u := range r.usuarios {
		if u.ID != excludeID && u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUsuarioRepo) Update(u *entity.Usuario) error {
	cp := *u
	r.usuarios[u.ID] = &cp
	return nil
}

func (r *fakeUsuarioRepo) UpdatePassword(id int64, passwordHash string) error {
	if u, ok := r.usuarios[id]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

func (r *fakeUsuarioRepo) ListActivos() ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range r.usuarios {
		if u.Activo {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUsuarioRepo) CountAdminsActivos() (int64, error) {
	var n int64
	for _, u := range r.usuarios {
		if u.Activo && u.Rol == entity.RolAdmin {
			n++
		}
	}
	return n, nil
}

func (r *fakeUsuarioRepo) SoftDelete(id int64) error {
	if u, ok := r.usuarios[id]; ok {
		u.Activo = false
	}
	return nil
}

type fakeCategoriaRepo struct {
	categorias map[int64]*entity.Categoria
	nextID     int64
}

func newFakeCategoriaRepo(seed ...*entity.Categoria) *fakeCategoriaRepo {
	r := &fakeCategoriaRepo{categorias: make(map[int64]*entity.Categoria), nextID: 1}
	for _, c := range seed {
		cp := *c
		if cp.ID == 0 {
			cp.ID = r.nextID
		}
		if cp.ID >= r.nextID {
			r.nextID = cp.ID + 1
		}
		r.categorias[cp.ID] = &cp
	}
	return r
}

func (r *fakeCategoriaRepo) Create(c *entity.Categoria) error {
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.categorias[c.ID] = &cp
	return nil
}

func (r *fakeCategoriaRepo) GetByID(id int64) (*entity.Categoria, error) {
	c, ok := r.categorias[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoriaRepo) ExistsByNombre(nombre string, excludeID int64) (bool, error) {
	for _, c := range r.categorias {
		if c.ID != excludeID && c.Activa && strings.EqualFold(c.Nombre, nombre) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoriaRepo) Update(c *entity.Categoria) error {
	cp := *c
	r.categorias[c.ID] = &cp
	return nil
}

func (r *fakeCategoriaRepo) ListActivas() ([]*entity.Categoria, error) {
	var out []*entity.Categoria
	for _, c := range r.categorias {
		if c.Activa {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCategoriaRepo) SoftDelete(id int64) error {
	if c, ok := r.categorias[id]; ok {
		c.Activa = false
	}
	return nil
}

type fakeProveedorRepo struct {
	proveedores map[int64]*entity.Proveedor
	nextID      int64
}

func newFakeProveedorRepo(seed ...*entity.Proveedor) *fakeProveedorRepo {
	r := &fakeProveedorRepo{proveedores: make(map[int64]*entity.Proveedor), nextID: 1}
	for _, p := range seed {
		cp := *p
		if cp.ID == 0 {
			cp.ID = r.nextID
		}
		if cp.ID >= r.nextID {
			r.nextID = cp.ID + 1
		}
		r.proveedores[cp.ID] = &cp
	}
	return r
}

func (r *fakeProveedorRepo) Create(p *entity.Proveedor) error {
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.proveedores[p.ID] = &cp
	return nil
}

func (r *fakeProveedorRepo) GetByID(id int64) (*entity.Proveedor, error) {
	p, ok := r.proveedores[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProveedorRepo) ExistsByEmail(email string, excludeID int64) (bool, error) {
	for _, p := range r.proveedores {
		if p.ID != excludeID && p.Activo && p.Email != "" && strings.EqualFold(p.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProveedorRepo) Update(p *entity.Proveedor) error {
	cp := *p
	r.proveedores[p.ID] = &cp
	return nil
}

func (r *fakeProveedorRepo) ListActivos() ([]*entity.Proveedor, error) {
	var out []*entity.Proveedor
	for _, p := range r.proveedores {
		if p.Activo {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProveedorRepo) SoftDelete(id int64) error {
	if p, ok := r.proveedores[id]; ok {
		p.Activo = false
	}
	return nil
}

type fakeProductoRepo struct {
	productos map[int64]*entity.Producto
	nextID    int64
}

func newFakeProductoRepo(seed ...*entity.Producto) *fakeProductoRepo {
	r := &fakeProductoRepo{productos: make(map[int64]*entity.Producto), nextID: 1}
	for _, p := range seed {
		cp := *p
		if cp.ID == 0 {
			cp.ID = r.nextID
		}
		if cp.ID >= r.nextID {
			r.nextID = cp.ID + 1
		}
		r.productos[cp.ID] = &cp
	}
	return r
}

func (r *fakeProductoRepo) Create(p *entity.Producto) error {
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.productos[p.ID] = &cp
	return nil
}

func (r *fakeProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductoRepo) GetForUpdate(id int64) (*entity.Producto, error) {
	return r.GetByID(id)
}

func (r *fakeProductoRepo) Update(p *entity.Producto) error {
	cp := *p
	r.productos[p.ID] = &cp
	return nil
}

func (r *fakeProductoRepo) UpdateStock(id int64, stock int) error {
	if p, ok := r.productos[id]; ok {
		p.Stock = stock
	}
	return nil
}

func (r *fakeProductoRepo) ListActivos() ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range r.productos {
		if p.Activo {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductoRepo) ListByCategoria(categoriaID int64) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range r.productos {
		if p.Activo && p.CategoriaID == categoriaID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductoRepo) ListByProveedor(proveedorID int64) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range r.productos {
		if p.Activo && p.ProveedorID == proveedorID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductoRepo) ExistsActivoByCategoria(categoriaID int64) (bool, error) {
	for _, p := range r.productos {
		if p.Activo && p.CategoriaID == categoriaID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProductoRepo) ExistsActivoByProveedor(proveedorID int64) (bool, error) {
	for _, p := range r.productos {
		if p.Activo && p.ProveedorID == proveedorID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProductoRepo) SoftDelete(id int64) error {
	if p, ok := r.productos[id]; ok {
		p.Activo = false
	}
	return nil
}
