package entity

// LanguageId identifies a row of the language catalog.
type LanguageId int

// Language is a row of the read-only language catalog. The catalog is
// seeded by migrations and never mutated at runtime.
type Language struct {
	Id   LanguageId `db:"id" json:"id"`
	Code string     `db:"code" json:"code"` // ISO 639-1 code, or "und" for undetermined
	Name string     `db:"name" json:"name"`
}

// SiteLanguage marks a language as allowed on a site.
type SiteLanguage struct {
	SiteId     SiteId     `db:"site_id" json:"site_id"`
	LanguageId LanguageId `db:"language_id" json:"language_id"`
}

// CommunityLanguage marks a language as allowed in a community. Post and
// comment languages are validated against these rows.
type CommunityLanguage struct {
	CommunityId CommunityId `db:"community_id" json:"community_id"`
	LanguageId  LanguageId  `db:"language_id" json:"language_id"`
}

// LocalUserLanguage marks a language as selected by a local user.
type LocalUserLanguage struct {
	LocalUserId LocalUserId `db:"local_user_id" json:"local_user_id"`
	LanguageId  LanguageId  `db:"language_id" json:"language_id"`
}
