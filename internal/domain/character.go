// Package domain contains core domain types for the Guess Who game server.
package domain

// Gender is a character's gender attribute.
type Gender string

// Gender values.
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// HairColor is a character's hair color attribute.
type HairColor string

// HairColor values.
const (
	HairBlack  HairColor = "black"
	HairBrown  HairColor = "brown"
	HairBlonde HairColor = "blonde"
	HairRed    HairColor = "red"
	HairGray   HairColor = "gray"
	HairWhite  HairColor = "white"
	HairOther  HairColor = "other"
)

// HairLength is a character's hair length attribute.
type HairLength string

// HairLength values.
const (
	HairShort  HairLength = "short"
	HairMedium HairLength = "medium"
	HairLong   HairLength = "long"
	HairBald   HairLength = "bald"
)

// EyeColor is a character's eye color attribute.
type EyeColor string

// EyeColor values.
const (
	EyesBrown EyeColor = "brown"
	EyesBlue  EyeColor = "blue"
	EyesGreen EyeColor = "green"
	EyesHazel EyeColor = "hazel"
	EyesGray  EyeColor = "gray"
)

// AgeBracket is a character's coarse age attribute.
type AgeBracket string

// AgeBracket values.
const (
	AgeYoung      AgeBracket = "young"
	AgeMiddleAged AgeBracket = "middle-aged"
	AgeElderly    AgeBracket = "elderly"
)

// SkinTone is a character's skin tone attribute.
type SkinTone string

// SkinTone values.
const (
	SkinLight  SkinTone = "light"
	SkinMedium SkinTone = "medium"
	SkinDark   SkinTone = "dark"
)

// Expression is a character's facial expression attribute.
type Expression string

// Expression values.
const (
	ExpressionSmiling Expression = "smiling"
	ExpressionSerious Expression = "serious"
	ExpressionNeutral Expression = "neutral"
)

// CharacterAttributes is the closed attribute vector every question and
// elimination ultimately resolves against.
type CharacterAttributes struct {
	Gender        Gender     `json:"gender"`
	HairColor     HairColor  `json:"hairColor"`
	HairLength    HairLength `json:"hairLength"`
	EyeColor      EyeColor   `json:"eyeColor"`
	HasGlasses    bool       `json:"hasGlasses"`
	HasFacialHair bool       `json:"hasFacialHair"`
	Age           AgeBracket `json:"age"`
	SkinTone      SkinTone   `json:"skinTone"`
	HasHat        bool       `json:"hasHat"`
	HasEarrings   bool       `json:"hasEarrings"`
	Expression    Expression `json:"expression"`
}

// Character is one playable face on the board. Characters are seeded once at
// process start and never mutated.
type Character struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	ImageURL   string              `json:"imageUrl"`
	Attributes CharacterAttributes `json:"attributes"`
}
