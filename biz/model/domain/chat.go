package domain

import "time"

type Emotion string

const (
	EmotionJoy     Emotion = "joy"
	EmotionFear    Emotion = "fear"
	EmotionAnger   Emotion = "anger"
	EmotionSadness Emotion = "sadness"
	EmotionNeutral Emotion = "neutral"
)

// EmotionLabels is the closed label set, in the order the classifier scores them.
var EmotionLabels = []Emotion{
	EmotionJoy,
	EmotionFear,
	EmotionAnger,
	EmotionSadness,
	EmotionNeutral,
}

type Conversation struct {
	PublicID        string
	OwnerID         uint
	UserSentence    string
	ChatbotSentence string
	UserEmotion     Emotion
	CreatedAt       time.Time
}

type EmotionLog struct {
	PublicID    string
	OwnerID     uint
	UserInput   string
	UserEmotion Emotion
	CreatedAt   time.Time
}

type Quote struct {
	Text   string
	Author string
}
