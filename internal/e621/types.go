package e621

// Post is the subset of e621 post fields required by the app.
// Posts are immutable once fetched; identity is the numeric ID.
type Post struct {
	ID          int64   `json:"id"`
	File        File    `json:"file"`
	Preview     Preview `json:"preview"`
	Score       Score   `json:"score"`
	Tags        Tags    `json:"tags"`
	Rating      string  `json:"rating"` // s, q or e
	FavCount    int     `json:"fav_count"`
	Description string  `json:"description"`
}

type File struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Ext    string `json:"ext"`
	Size   int    `json:"size"`
	URL    string `json:"url"`
}

type Preview struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	URL    string `json:"url"`
}

type Score struct {
	Up    int `json:"up"`
	Down  int `json:"down"`
	Total int `json:"total"`
}

// Tags partitions a post's tags into the named groups e621 returns.
type Tags struct {
	General   []string `json:"general"`
	Species   []string `json:"species"`
	Character []string `json:"character"`
	Copyright []string `json:"copyright"`
	Artist    []string `json:"artist"`
	Invalid   []string `json:"invalid"`
	Lore      []string `json:"lore"`
	Meta      []string `json:"meta"`
}

// Groups returns the tag groups in display order, keyed by group name.
func (t Tags) Groups() []TagGroup {
	return []TagGroup{
		{"artist", t.Artist},
		{"character", t.Character},
		{"copyright", t.Copyright},
		{"species", t.Species},
		{"general", t.General},
		{"meta", t.Meta},
		{"lore", t.Lore},
		{"invalid", t.Invalid},
	}
}

type TagGroup struct {
	Name string
	Tags []string
}

type Comment struct {
	ID          int64  `json:"id"`
	PostID      int64  `json:"post_id"`
	Body        string `json:"body"`
	CreatorName string `json:"creator_name"`
	CreatedAt   string `json:"created_at"`
}

type WikiPage struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// UserProfile is returned by the users endpoint. BlacklistedTags carries the
// server-declared blacklist as a newline-delimited string.
type UserProfile struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	BlacklistedTags string `json:"blacklisted_tags"`
	FavoriteCount   int    `json:"favorite_count"`
}

type TagSuggestion struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	PostCount int    `json:"post_count"`
}

// Credentials identify an authenticated session. The zero value means
// unauthenticated.
type Credentials struct {
	Username string `json:"username"`
	APIKey   string `json:"api_key"`
}

func (c Credentials) Empty() bool {
	return c.Username == "" || c.APIKey == ""
}
