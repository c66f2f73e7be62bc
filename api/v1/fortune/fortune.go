package fortune

import (
	"errors"
	"math/rand/v2"
	"sync"
)

// ErrEmptyCorpus is returned when a service is built without any fortunes.
var ErrEmptyCorpus = errors.New("fortune corpus is empty")

// Picker returns an index in [0, n).
type Picker interface {
	IntN(n int) int
}

type globalPicker struct{}

func (globalPicker) IntN(n int) int {
	return rand.IntN(n)
}

// DefaultPicker draws from the process-wide math/rand/v2 source, which is
// safe for concurrent use.
func DefaultPicker() Picker {
	return globalPicker{}
}

type seededPicker struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededPicker returns a deterministic picker. Calls are serialized
// because *rand.Rand is not safe for concurrent use.
func NewSeededPicker(seed uint64) Picker {
	return &seededPicker{r: rand.New(rand.NewPCG(seed, seed))}
}

func (p *seededPicker) IntN(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.r.IntN(n)
}

// Service holds an immutable corpus and draws from it.
type Service struct {
	corpus []string
	picker Picker
}

// NewService copies corpus so later changes by the caller are not seen.
// A nil picker falls back to DefaultPicker.
func NewService(corpus []string, picker Picker) (*Service, error) {
	if len(corpus) == 0 {
		return nil, ErrEmptyCorpus
	}
	if picker == nil {
		picker = DefaultPicker()
	}

	return &Service{
		corpus: append([]string(nil), corpus...),
		picker: picker,
	}, nil
}

// Draw returns one fortune chosen uniformly at random.
func (s *Service) Draw() string {
	return s.corpus[s.picker.IntN(len(s.corpus))]
}

func (s *Service) Size() int {
	return len(s.corpus)
}

// DefaultCorpus returns the built-in fortunes.
func DefaultCorpus() []string {
	return []string{
		"雲層散開，柔光指引你前行，心念所向即有回聲。",
		"如羽般輕盈的日子正靠近，記得放慢呼吸，接住溫柔的機會。",
		"花影搖曳，你的步伐帶著微光，願意嘗試的小事會帶來驚喜。",
		"微風拂過心湖，答案在細碎波紋裡，靜心聆聽便能感受。",
		"月色如水，柔柔地照亮你的選擇，信任直覺，它不會背叛你。",
		"星光低語，今天的勇氣會種下一顆溫柔的種子。",
		"霧氣微散，新的念頭像光點一樣閃現，試著記下它們。",
		"晨露閃爍在葉尖，提醒你：小小的改變也會帶來暖意。",
		"淡紫色的希望在你面前展開，跟隨它一步一步走近。",
		"在柔和的光中，給自己一個微笑，答案會悄悄來到你身邊。",
	}
}
