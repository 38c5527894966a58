package assessment

import (
	"math"
	"math/rand"
	"strings"

	"github.com/yungbote/asmtgen/internal/domain"
)

var responseWords = []string{
	"the", "student", "explains", "that", "both", "passages", "describe",
	"a", "similar", "problem", "and", "uses", "evidence", "from", "text",
	"to", "support", "each", "claim", "with", "clear", "reasoning",
}

// freeText builds response prose longer than minLen characters. With the
// positive marker set, the text contains the word "good" so scorers of
// generic items can be verified.
func freeText(rng *rand.Rand, minLen int, positive bool) string {
	var b strings.Builder
	if positive {
		b.WriteString("good ")
	}
	for b.Len() <= minLen+1 {
		b.WriteString(responseWords[rng.Intn(len(responseWords))])
		b.WriteString(" ")
	}
	return strings.TrimSpace(b.String())
}

// GenerateResponse simulates one response to one item at the given
// capability and writes it into data. The chance of a correct response is
// logistic in (capability - difficulty); selection, score, response text
// and timing metadata are all populated here. No other field of data is
// touched.
func GenerateResponse(rng *rand.Rand, data *domain.AssessmentOutcomeItemData, item *domain.AssessmentItem, capability float64) {
	p := correctProbability(capability, item.Difficulty)
	correct := rng.Float64() < p

	data.IsSelected = true
	data.Dropped = "0"
	data.ScoreStatus = "SCORED"
	data.NumberVisits = 1 + rng.Intn(3)
	data.PageNumber = 1 + rng.Intn(12)
	data.PageVisits = data.NumberVisits

	switch item.Type {
	case "MC":
		data.PageTime = 250 + rng.Intn(60000)
		if correct {
			data.ResponseValue = item.AnswerKey
			data.Score = item.MaxScore
		} else {
			data.ResponseValue = wrongChoice(rng, item)
			data.Score = 0
		}
	case "MS":
		data.PageTime = 250 + rng.Intn(60000)
		if correct {
			data.ResponseValue = item.AnswerKey
			data.Score = item.MaxScore
		} else {
			data.ResponseValue = wrongMultiSelect(rng, item)
			data.Score = 0
		}
	case "SA":
		data.PageTime = 1001 + rng.Intn(120000)
		data.ResponseValue = freeText(rng, 40, correct)
		if correct {
			data.Score = item.MaxScore
		}
	case "WER":
		data.PageTime = 1001 + rng.Intn(120000)
		data.ResponseValue = freeText(rng, 80, correct)
		data.SubScores = essaySubScores(rng, item.MaxScore, p)
		data.Score = combineSubScores(data.SubScores)
	default:
		data.PageTime = 1001 + rng.Intn(120000)
		data.ResponseValue = freeText(rng, 40, correct)
		if correct {
			data.Score = item.MaxScore
		}
	}
}

// wrongChoice picks a single option letter different from the answer key.
func wrongChoice(rng *rand.Rand, item *domain.AssessmentItem) string {
	count := item.OptionsCount
	if count < 2 || count > len(optionLetters) {
		count = 4
	}
	for {
		letter := string(optionLetters[rng.Intn(count)])
		if letter != item.AnswerKey {
			return letter
		}
	}
}

// wrongMultiSelect builds a non-empty combination of option letters that
// shares no letter with the answer key, so it can never equal it.
func wrongMultiSelect(rng *rand.Rand, item *domain.AssessmentItem) string {
	count := item.OptionsCount
	if count < 2 || count > len(optionLetters) {
		count = 6
	}
	keyed := map[byte]bool{}
	for _, part := range strings.Split(item.AnswerKey, ",") {
		if part != "" {
			keyed[part[0]] = true
		}
	}

	var picked []string
	for i := 0; i < count; i++ {
		if keyed[optionLetters[i]] {
			continue
		}
		if rng.Intn(2) == 0 {
			picked = append(picked, string(optionLetters[i]))
		}
	}
	if len(picked) == 0 {
		for i := 0; i < count; i++ {
			if !keyed[optionLetters[i]] {
				picked = append(picked, string(optionLetters[i]))
				break
			}
		}
	}
	return strings.Join(picked, ",")
}

// essaySubScores draws the three essay dimension scores, each in
// [0, maxScore], biased by the correctness probability.
func essaySubScores(rng *rand.Rand, maxScore int, p float64) []int {
	subs := make([]int, 3)
	for i := range subs {
		if rng.Float64() < p {
			subs[i] = maxScore - rng.Intn(2)
			if subs[i] < 0 {
				subs[i] = 0
			}
		} else {
			subs[i] = rng.Intn(maxScore + 1)
		}
	}
	return subs
}

// combineSubScores rolls dimension scores up into the item score.
func combineSubScores(subs []int) int {
	total := 0
	for _, s := range subs {
		total += s
	}
	return int(math.Round(float64(total) / float64(len(subs))))
}
