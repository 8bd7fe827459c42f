package dto

type UserInputReq struct {
	UserInput string `json:"userInput" validate:"required,max=1024"`
}

type ChatResp struct {
	ChatBotResponse  string `json:"chatBotResponse"`
	UserInputEmotion string `json:"userInputEmotion"`
}

type Conversation struct {
	PublicID        string `json:"public_id"`
	UserSentence    string `json:"user_sentence"`
	ChatbotSentence string `json:"chatbot_sentence"`
	UserEmotion     string `json:"user_emotion"`
	CreatedAt       int64  `json:"created_at"`
}

type ListConversationResp struct {
	Conversations []Conversation `json:"conversations"`
}

type PageReq struct {
	Page int `path:"page" validate:"min=0"`
}

type UserPublicIDReq struct {
	UserPublicID string `path:"user_public_id" validate:"required,max=64"`
}

type ConversationIDReq struct {
	PublicID string `path:"public_id" validate:"required,max=64"`
}

type DeleteAllResp struct {
	Deleted int64  `json:"deleted"`
	Message string `json:"message"`
}

type EmotionResp struct {
	PublicID         string `json:"public_id"`
	UserInputEmotion string `json:"userInputEmotion"`
}

type EmotionLog struct {
	PublicID    string `json:"public_id"`
	UserInput   string `json:"user_input"`
	UserEmotion string `json:"user_emotion"`
	CreatedAt   int64  `json:"created_at"`
}

type ListEmotionResp struct {
	Emotions []EmotionLog `json:"emotions"`
}

type QuoteResp struct {
	Quote  string `json:"quotes"`
	Author string `json:"author"`
}

type EmotionIDReq struct {
	PublicID string `path:"public_id" validate:"required,max=64"`
}
