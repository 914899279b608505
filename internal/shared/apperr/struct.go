package apperr

type Kind string

type AppError struct {
	Kind      Kind
	PublicMsg string // kullanıcıya gösterilebilir mesaj
	Err       error  // internal hata (log için)
}
