package model

import "time"

// CardType — назначение карты.
type CardType string

const (
	CardTypeCredit CardType = "CREDIT"
	CardTypeDebit  CardType = "DEBIT"
	CardTypeBoth   CardType = "BOTH"
)

// Cipher — то, чем записи закрывают чувствительные поля перед сохранением.
type Cipher interface {
	Encrypt(plain string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// Secret — общий контракт защищённой записи пользователя.
// Пять видов записей отличаются только набором полей: ключ уникальности
// задаёт ConflictKey, список чувствительных полей — Seal/Open.
type Secret interface {
	GetID() int64
	GetOwnerID() int64
	SetOwnerID(id int64)
	// ConflictKey возвращает колонки, определяющие дубликат в пределах владельца.
	ConflictKey() map[string]any
	// Seal шифрует чувствительные поля перед записью в БД.
	Seal(c Cipher) error
	// Open расшифровывает чувствительные поля после чтения из БД.
	Open(c Cipher) error
}

// Credential — логин/пароль для сайта.
type Credential struct {
	ID     int64 `gorm:"primaryKey" json:"id"`
	UserID int64 `gorm:"not null;index;uniqueIndex:uniq_credential_owner_title" json:"-"`

	Title    string `gorm:"not null;uniqueIndex:uniq_credential_owner_title" json:"title"`
	URL      string `gorm:"not null" json:"url"`
	Username string `gorm:"not null" json:"username"`
	Password string `gorm:"not null" json:"password"` // шифртекст в БД

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (c *Credential) GetID() int64       { return c.ID }
func (c *Credential) GetOwnerID() int64  { return c.UserID }
func (c *Credential) SetOwnerID(id int64) { c.UserID = id }

func (c *Credential) ConflictKey() map[string]any {
	return map[string]any{"user_id": c.UserID, "title": c.Title}
}

func (c *Credential) Seal(ci Cipher) error {
	enc, err := ci.Encrypt(c.Password)
	if err != nil {
		return err
	}
	c.Password = enc
	return nil
}

func (c *Credential) Open(ci Cipher) error {
	plain, err := ci.Decrypt(c.Password)
	if err != nil {
		return err
	}
	c.Password = plain
	return nil
}

// Card — банковская карта. Password и CVV хранятся зашифрованными.
type Card struct {
	ID     int64 `gorm:"primaryKey" json:"id"`
	UserID int64 `gorm:"not null;index;uniqueIndex:uniq_card_owner_title" json:"-"`

	Title      string   `gorm:"not null;uniqueIndex:uniq_card_owner_title" json:"title"`
	Number     string   `gorm:"not null" json:"number"`
	Name       string   `gorm:"not null" json:"name"`
	CVV        string   `gorm:"not null" json:"cvv"`
	Expiration string   `gorm:"not null" json:"expiration"` // MM/YY
	Password   string   `gorm:"not null" json:"password"`
	Virtual    bool     `gorm:"not null" json:"virtual"`
	Type       CardType `gorm:"not null" json:"type"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (c *Card) GetID() int64        { return c.ID }
func (c *Card) GetOwnerID() int64   { return c.UserID }
func (c *Card) SetOwnerID(id int64) { c.UserID = id }

func (c *Card) ConflictKey() map[string]any {
	return map[string]any{"user_id": c.UserID, "title": c.Title}
}

func (c *Card) Seal(ci Cipher) error {
	password, err := ci.Encrypt(c.Password)
	if err != nil {
		return err
	}
	cvv, err := ci.Encrypt(c.CVV)
	if err != nil {
		return err
	}
	c.Password, c.CVV = password, cvv
	return nil
}

func (c *Card) Open(ci Cipher) error {
	password, err := ci.Decrypt(c.Password)
	if err != nil {
		return err
	}
	cvv, err := ci.Decrypt(c.CVV)
	if err != nil {
		return err
	}
	c.Password, c.CVV = password, cvv
	return nil
}

// Wifi — сохранённая точка доступа.
type Wifi struct {
	ID     int64 `gorm:"primaryKey" json:"id"`
	UserID int64 `gorm:"not null;index;uniqueIndex:uniq_wifi_owner_title" json:"-"`

	Title    string `gorm:"not null;uniqueIndex:uniq_wifi_owner_title" json:"title"`
	Name     string `gorm:"not null" json:"name"`
	Password string `gorm:"not null" json:"password"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (w *Wifi) GetID() int64        { return w.ID }
func (w *Wifi) GetOwnerID() int64   { return w.UserID }
func (w *Wifi) SetOwnerID(id int64) { w.UserID = id }

func (w *Wifi) ConflictKey() map[string]any {
	return map[string]any{"user_id": w.UserID, "title": w.Title}
}

func (w *Wifi) Seal(ci Cipher) error {
	enc, err := ci.Encrypt(w.Password)
	if err != nil {
		return err
	}
	w.Password = enc
	return nil
}

func (w *Wifi) Open(ci Cipher) error {
	plain, err := ci.Decrypt(w.Password)
	if err != nil {
		return err
	}
	w.Password = plain
	return nil
}

// License — лицензия на ПО. Чувствительных полей нет, дубликат определяется
// по содержимому, а не по заголовку.
type License struct {
	ID     int64 `gorm:"primaryKey" json:"id"`
	UserID int64 `gorm:"not null;index;uniqueIndex:uniq_license_owner_software" json:"-"`

	SoftwareName    string `gorm:"not null;uniqueIndex:uniq_license_owner_software" json:"softwareName"`
	SoftwareVersion string `gorm:"not null;uniqueIndex:uniq_license_owner_software" json:"softwareVersion"`
	LicenseKey      string `gorm:"not null;uniqueIndex:uniq_license_owner_software" json:"licenseKey"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (l *License) GetID() int64        { return l.ID }
func (l *License) GetOwnerID() int64   { return l.UserID }
func (l *License) SetOwnerID(id int64) { l.UserID = id }

func (l *License) ConflictKey() map[string]any {
	return map[string]any{
		"user_id":          l.UserID,
		"software_name":    l.SoftwareName,
		"software_version": l.SoftwareVersion,
		"license_key":      l.LicenseKey,
	}
}

func (l *License) Seal(Cipher) error { return nil }
func (l *License) Open(Cipher) error { return nil }

// Note — свободный текст, хранится открыто.
type Note struct {
	ID     int64 `gorm:"primaryKey" json:"id"`
	UserID int64 `gorm:"not null;index;uniqueIndex:uniq_note_owner_title" json:"-"`

	Title string `gorm:"not null;uniqueIndex:uniq_note_owner_title" json:"title"`
	Text  string `gorm:"not null" json:"text"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (n *Note) GetID() int64        { return n.ID }
func (n *Note) GetOwnerID() int64   { return n.UserID }
func (n *Note) SetOwnerID(id int64) { n.UserID = id }

func (n *Note) ConflictKey() map[string]any {
	return map[string]any{"user_id": n.UserID, "title": n.Title}
}

func (n *Note) Seal(Cipher) error { return nil }
func (n *Note) Open(Cipher) error { return nil }
