package models

import "time"

// Platform is the social network a post is written for.
type Platform string

const (
	PlatformTwitter   Platform = "Twitter"
	PlatformLinkedIn  Platform = "LinkedIn"
	PlatformInstagram Platform = "Instagram"
	PlatformFacebook  Platform = "Facebook"
)

// Platforms lists every supported platform in display order.
var Platforms = []Platform{PlatformTwitter, PlatformLinkedIn, PlatformInstagram, PlatformFacebook}

// PlatformLimits holds the maximum post length, in characters, per platform.
var PlatformLimits = map[Platform]int{
	PlatformTwitter:   280,
	PlatformLinkedIn:  3000,
	PlatformInstagram: 2200,
	PlatformFacebook:  63206,
}

func (p Platform) Valid() bool {
	_, ok := PlatformLimits[p]
	return ok
}

// Tone is the voice the generated text should use.
type Tone string

const (
	ToneProfessional  Tone = "Professional"
	ToneCasual        Tone = "Casual"
	TonePlayful       Tone = "Playful"
	ToneInspirational Tone = "Inspirational"
)

// Tones lists every supported tone in display order.
var Tones = []Tone{ToneProfessional, ToneCasual, TonePlayful, ToneInspirational}

func (t Tone) Valid() bool {
	for _, v := range Tones {
		if v == t {
			return true
		}
	}
	return false
}

const (
	MaxTopicLength       = 500
	MaxConstraintsLength = 200
	// MaxFinalTextLength is the longest limit of any supported platform.
	MaxFinalTextLength = 63206
)

// Post is a persisted generated draft together with its edited copy and
// approval state.
type Post struct {
	ID            string    `json:"id" db:"id"`
	Platform      Platform  `json:"platform" db:"platform"`
	Tone          Tone      `json:"tone" db:"tone"`
	Topic         string    `json:"topic" db:"topic"`
	Constraints   string    `json:"constraints" db:"constraints_text"`
	GeneratedText string    `json:"generatedText" db:"generated_text"`
	FinalText     string    `json:"finalText" db:"final_text"`
	Approved      bool      `json:"approved" db:"approved"`
	ModelUsed     string    `json:"modelUsed" db:"model_used"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// Brief is the user request a post is generated from.
type Brief struct {
	Platform    Platform `json:"platform"`
	Tone        Tone     `json:"tone"`
	Topic       string   `json:"topic"`
	Constraints string   `json:"constraints"`
}

// PostPatch is a partial update. Nil fields are left untouched.
type PostPatch struct {
	FinalText *string `json:"finalText"`
	Approved  *bool   `json:"approved"`
}

// Empty reports whether the patch changes nothing.
func (p PostPatch) Empty() bool {
	return p.FinalText == nil && p.Approved == nil
}

// ListFilter narrows a post listing. A nil Approved lists everything.
type ListFilter struct {
	Approved *bool
}
