package migrations

import (
	"log"

	"gorm.io/gorm"
)

// AddSamplingIndexes adiciona os índices especializados do caminho de
// amostragem e das listagens mais quentes.
func AddSamplingIndexes(db *gorm.DB) error {
	log.Println("Adicionando índices de amostragem...")

	indexes := []string{
		// O filtro demográfico consulta a coluna JSONB com operadores de
		// containment e ->>; o GIN cobre os dois.
		"CREATE INDEX IF NOT EXISTS idx_ipumps_demographics_gin ON ipumps USING GIN (demographics)",

		// Só pesquisas em draft aceitam edição de perguntas; o índice
		// parcial mantém o gate barato mesmo com histórico grande.
		"CREATE INDEX IF NOT EXISTS idx_surveys_draft ON surveys (user_id) WHERE status = 'draft'",

		// Índice BRIN para leitura de resultados por período (inserção é
		// aproximadamente sequencial em created_at).
		"CREATE INDEX IF NOT EXISTS idx_results_created_at_brin ON results USING BRIN (created_at)",

		// Ledger consultado sempre por usuário, mais recente primeiro.
		"CREATE INDEX IF NOT EXISTS idx_tokens_user_created ON tokens (user_id, created_at DESC)",
	}

	for _, idx := range indexes {
		if err := db.Exec(idx).Error; err != nil {
			return err
		}
	}

	log.Println("Índices de amostragem criados com sucesso!")
	return nil
}
