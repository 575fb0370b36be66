package verse

// Locale tables for the verse flow. Anything beyond these small lookups
// (full string catalogs, fonts) lives outside this service.

var translations = map[string]string{
	"en": "web",
	"pt": "almeida",
	"ro": "rccv",
}

const defaultTranslation = "web"

// TranslationFor maps a locale to the remote translation id.
func TranslationFor(locale string) string {
	if id, ok := translations[locale]; ok {
		return id
	}
	return defaultTranslation
}

var fallbackMessages = map[string]string{
	"en": "We could not load a verse right now. Please check your connection and try again.",
	"pt": "Não foi possível carregar um versículo agora. Verifique sua conexão e tente novamente.",
	"ro": "Nu am putut încărca un verset acum. Verificați conexiunea și încercați din nou.",
}

// FallbackMessage returns the placeholder verse text for a locale.
func FallbackMessage(locale string) string {
	if msg, ok := fallbackMessages[locale]; ok {
		return msg
	}
	return fallbackMessages["en"]
}

var reminderTitles = map[string]string{
	"en": "Your daily verse",
	"pt": "Seu versículo diário",
	"ro": "Versetul tău zilnic",
}

// ReminderTitle returns the daily reminder notification title for a locale.
func ReminderTitle(locale string) string {
	if title, ok := reminderTitles[locale]; ok {
		return title
	}
	return reminderTitles["en"]
}
