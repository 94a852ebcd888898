package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "name" or "value").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_value":
			return "有効なメンバー値ではありません"
		case "unknown_member":
			return "未知のメンバー名です"
		case "duplicate_member":
			return "メンバー名が重複しています"
		case "init_failed":
			return "メンバー初期化フックが失敗しました"
		}
	default: // "en"
		switch code {
		case "invalid_value":
			return "not a valid member value"
		case "unknown_member":
			return "unknown member name"
		case "duplicate_member":
			return "duplicate member name"
		case "init_failed":
			return "member init hook failed"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
