package card

import (
	"fmt"
	"strings"

	"quizcard/internal/hint"
)

// Messages is the user-visible copy of a card.
type Messages struct {
	ShowHint         string
	HideHint         string
	LengthLabel      string
	LengthUnit       string
	FirstCharLabel   string
	Hints            hint.Texts
	Placeholder      string
	Submit           string
	SubmitShortcut   string
	Correct          string
	Incorrect        string
	CorrectAnswerIs  string
	Audio            string
	AudioUnavailable string
}

// English is the default catalog.
var English = Messages{
	ShowHint:         "Hint",
	HideHint:         "Hide hint",
	LengthLabel:      "Length:",
	LengthUnit:       "letters",
	FirstCharLabel:   "Starts with:",
	Hints:            hint.DefaultTexts,
	Placeholder:      "Type what you hear...",
	Submit:           "SUBMIT",
	SubmitShortcut:   "Press ENTER to submit",
	Correct:          "EXCELLENT, CORRECT!",
	Incorrect:        "BETTER LUCK NEXT TIME!",
	CorrectAnswerIs:  "The correct answer is:",
	Audio:            "Audio",
	AudioUnavailable: "audio playback failed",
}

// Vietnamese is the catalog for "vi".
var Vietnamese = Messages{
	ShowHint:       "Gợi ý",
	HideHint:       "Ẩn gợi ý",
	LengthLabel:    "Từ có:",
	LengthUnit:     "chữ cái",
	FirstCharLabel: "Bắt đầu bằng:",
	Hints: hint.Texts{
		FreeText: "Gợi ý: Hãy lắng nghe thật kỹ từ còn thiếu.",
		Options:  "Gợi ý: Một trong các đáp án bên dưới là câu trả lời chính xác.",
	},
	Placeholder:      "Gõ từ nghe được...",
	Submit:           "NỘP BÀI",
	SubmitShortcut:   "Nhấn ENTER để nộp nhanh",
	Correct:          "TUYỆT VỜI, CHÍNH XÁC!",
	Incorrect:        "CỐ GẮNG LẦN SAU NHÉ!",
	CorrectAnswerIs:  "Đáp án đúng phải là:",
	Audio:            "Âm thanh",
	AudioUnavailable: "không phát được âm thanh",
}

// Languages lists the supported catalog codes.
var Languages = []string{"en", "vi"}

// MessagesFor returns the catalog for a language code such as "en" or "vi-VN".
func MessagesFor(lang string) (Messages, error) {
	code := strings.ToLower(strings.TrimSpace(lang))
	if base, _, ok := strings.Cut(code, "-"); ok {
		code = base
	}
	switch code {
	case "", "en":
		return English, nil
	case "vi":
		return Vietnamese, nil
	default:
		return Messages{}, fmt.Errorf("unsupported language %q (expected %s)", lang, strings.Join(Languages, "|"))
	}
}
