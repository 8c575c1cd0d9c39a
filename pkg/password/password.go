package password

import "golang.org/x/crypto/bcrypt"

// Hash genera un hash bcrypt con salt aleatorio. Dos llamadas con el mismo
// password producen hashes distintos, pero ambos verifican contra él.
// El password en claro nunca debe registrarse en logs.
func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compara un password en claro contra un hash almacenado.
// Un hash malformado no produce error: simplemente no verifica.
func Verify(password, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}
