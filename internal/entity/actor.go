package entity

import "time"

type (
	SiteId      int
	CommunityId int
	LocalUserId int
)

// Site is the instance itself. Only the first site row is considered
// local, the rest are known federated peers.
type Site struct {
	Id        SiteId    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Community is a board users post into. Local communities are administered
// by this instance and must keep their language set within the site set.
type Community struct {
	Id        CommunityId `db:"id" json:"id"`
	Name      string      `db:"name" json:"name"`
	Title     string      `db:"title" json:"title"`
	Local     bool        `db:"local" json:"local"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
}

// CommunityInsert is the payload for creating a community.
type CommunityInsert struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Local bool   `json:"local"`
}

// LocalUser is an account registered on this instance.
type LocalUser struct {
	Id        LocalUserId `db:"id" json:"id"`
	Name      string      `db:"name" json:"name"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
}
