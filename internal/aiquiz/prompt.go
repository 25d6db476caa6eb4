package aiquiz

import "fmt"

const promptExample = `{
  "question": "Güneş'in çekirdeğinde gerçekleşen füzyon reaksiyonu sonucunda ne oluşur?",
  "options": [
    "Sadece ışık",
    "Işık ve ısı enerjisi",
    "Sadece ısı enerjisi",
    "Sadece radyasyon"
  ],
  "answer": 1,
  "explanation": "Güneş'te hidrojen çekirdeği birleşerek helyuma dönüşür ve bu süreçte devasa miktarda ışık ve ısı enerjisi açığa çıkar."
}`

const promptTemplate = `Sen bir Fen Bilimleri öğretmenisin.
%[1]s. sınıf seviyesine uygun, "%[2]s" ünitesi, "%[3]s" konusu için %[4]d adet çoktan seçmeli soru hazırla.

KRİTİK KURALLAR:
1. SADECE JSON formatında cevap ver
2. Format: {"questions": [{"question": "...", "options": ["A", "B", "C", "D"], "answer": 0, "explanation": "..."}]}
3. Her soruda TAM 4 şık olsun
4. answer 0-3 arasında bir tam sayı olmalı (0=A, 1=B, 2=C, 3=D)
5. Cümleler kısa ve anlaşılır olsun
6. Sorular %[1]s. sınıf seviyesinde olsun
7. Açıklamalar basit ve öğretici olsun
8. Türkçe ve anlaşılır dil kullan
9. JSON syntax hatası yapma

ÖRNEK SORU:
%[5]s`

// BuildPrompt renders the generation instructions. It performs no
// validation; the parser is the only safety net for what comes back.
func BuildPrompt(grade, unit, topic string, questionCount int) string {
	return fmt.Sprintf(promptTemplate, grade, unit, topic, questionCount, promptExample)
}
