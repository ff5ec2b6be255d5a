package videos

const Kind = "videos"

const (
	StatusPublished  = "published"
	StatusProcessing = "processing"
	StatusRejected   = "rejected"
)

var Statuses = []string{StatusPublished, StatusProcessing, StatusRejected}

// Video is a player highlight clip. Videos carry no location, so a location
// filter never matches them.
type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Sport       string `json:"sport" validate:"required,max=50"`
	Uploader    string `json:"uploader" validate:"required,max=100"`
	URL         string `json:"url" validate:"required,url"`
	Thumbnail   string `json:"thumbnail,omitempty" validate:"omitempty,url"`
	Duration    int    `json:"duration_seconds" validate:"gte=0"`
	Views       int    `json:"views" validate:"gte=0"`
	Likes       int    `json:"likes" validate:"gte=0"`
	UploadedAt  string `json:"uploaded_at,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status      string `json:"status" validate:"omitempty,oneof=published processing rejected"`
}

func (v Video) EntityID() string       { return v.ID }
func (v Video) EntityCategory() string { return v.Sport }
func (v Video) EntityLocation() string { return "" }
func (v Video) EntityStatus() string   { return v.Status }

func (v Video) SearchableText() []string {
	return []string{v.Title, v.Description, v.Uploader}
}

func (v Video) WithID(id string) Video {
	v.ID = id
	return v
}

func (v Video) WithStatus(status string) Video {
	v.Status = status
	return v
}
