// Package form holds the transient field state of the add-friend and
// split-bill forms. Fields are owned and reset here; only committed values
// reach the roster.
package form

import (
	"strings"

	"github.com/theirongolddev/eatsplit/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultImageURL is the placeholder avatar service used when no base image
// is configured.
const DefaultImageURL = "https://i.pravatar.cc/48"

// NewID returns a fresh friend identifier.
func NewID() string {
	return uuid.NewString()
}

// AddFriend is the add-friend form.
type AddFriend struct {
	Name  string
	Image string

	baseImage string
}

// NewAddFriend returns a form whose image field defaults to baseImage.
func NewAddFriend(baseImage string) AddFriend {
	if baseImage == "" {
		baseImage = DefaultImageURL
	}
	return AddFriend{Image: baseImage, baseImage: baseImage}
}

// Reset restores the default field values.
func (f *AddFriend) Reset() {
	f.Name = ""
	f.Image = f.baseImage
}

// Submit builds a new friend from the fields. It returns false and leaves
// the fields alone when the name or image is empty. On success the fields
// are reset.
//
// The id is appended to the image URL as a query discriminator so friends
// sharing the placeholder still get distinct avatars.
func (f *AddFriend) Submit(newID func() string) (model.Friend, bool) {
	name := strings.TrimSpace(f.Name)
	image := strings.TrimSpace(f.Image)
	if name == "" || image == "" {
		return model.Friend{}, false
	}
	if newID == nil {
		newID = NewID
	}

	id := newID()
	friend := model.Friend{
		ID:      id,
		Name:    name,
		Image:   image + "?=" + id,
		Balance: decimal.Zero,
	}
	f.Reset()
	return friend, true
}
