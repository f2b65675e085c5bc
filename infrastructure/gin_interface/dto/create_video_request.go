package dto

type CreateVideoRequest struct {
	Script    string `json:"script" binding:"required"`
	MusicPath string `json:"music_path"`
	VoiceID   string `json:"voice_id"`
}
