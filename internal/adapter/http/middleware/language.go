package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Timomoulin/Todo0/pkg/translator"
)

const langKey = "lang"

// LanguageMiddleware picks the response language from the "lang" query
// parameter or the Accept-Language header.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := translator.NegotiateLanguage(c.GetHeader("Accept-Language"))
		switch c.Query("lang") {
		case translator.LanguageFr, translator.LanguageEn:
			lang = c.Query("lang")
		}
		c.Set(langKey, lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get(langKey); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.DefaultLanguage
}
