package adapters

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"company_analysis/internal/feature/analysis/domain/entity"
)

func TestGenerationLogModelFromEntity_Truncation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		log             *entity.GenerationLog
		expectedCompany string
		expectedMsgLen  int
	}{
		{
			name: "multi-byte error message is cut on a rune boundary",
			// 2 + 3*400 bytes; a plain 1024-byte cut would land inside a rune
			log:             &entity.GenerationLog{CompanyName: "Acme Corp", ErrorMessage: "xx" + strings.Repeat("日", 400)},
			expectedCompany: "Acme Corp",
			expectedMsgLen:  1022,
		},
		{
			name:            "long company name fits the column",
			log:             &entity.GenerationLog{CompanyName: strings.Repeat("A", 300)},
			expectedCompany: strings.Repeat("A", 255),
		},
		{
			name:            "long multi-byte company name",
			log:             &entity.GenerationLog{CompanyName: strings.Repeat("株", 100)},
			expectedCompany: strings.Repeat("株", 85),
		},
		{
			name:            "short values are kept",
			log:             &entity.GenerationLog{CompanyName: "Zomato", ErrorMessage: "boom"},
			expectedCompany: "Zomato",
			expectedMsgLen:  4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := GenerationLogModelFromEntity(tt.log)

			assert.Equal(t, tt.expectedCompany, m.CompanyName)
			assert.LessOrEqual(t, len(m.CompanyName), 255)
			assert.True(t, utf8.ValidString(m.CompanyName), "company name must be valid UTF-8")
			assert.Len(t, m.ErrorMessage, tt.expectedMsgLen)
			assert.LessOrEqual(t, len(m.ErrorMessage), 1024)
			assert.True(t, utf8.ValidString(m.ErrorMessage), "error message must be valid UTF-8")
		})
	}
}
