package generator

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// PlatePool 生成互不重复的车牌号，格式为 LLL-DDD 或 LL-DDD。
// Letters/Digits 为候选字符集，测试可覆盖以缩小候选空间。
type PlatePool struct {
	Letters  string
	Digits   string
	LongRate float64 // 选取三字母格式的概率
}

// NewPlatePool 创建默认字符集的PlatePool
func NewPlatePool(longRate float64) *PlatePool {
	return &PlatePool{
		Letters:  plateLetters,
		Digits:   plateDigits,
		LongRate: longRate,
	}
}

// SpaceSize 返回当前格式配置下可达的候选空间大小
func (p *PlatePool) SpaceSize() int {
	l := len(p.Letters)
	d := len(p.Digits)
	short := l * l * d * d * d
	long := l * l * l * d * d * d
	switch {
	case p.LongRate <= 0:
		return short
	case p.LongRate >= 1:
		return long
	default:
		return short + long
	}
}

// Generate 生成n个互不重复的车牌号，顺序为首次出现顺序。
// n超过可达候选空间时返回配置错误，而不是无限循环。
func (p *PlatePool) Generate(n int, r *rand.Rand) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("plate pool: count must be at least 1, got %d", n)
	}
	if space := p.SpaceSize(); n > space {
		return nil, fmt.Errorf("plate pool: %d plates requested but only %d are reachable", n, space)
	}

	seen := make(map[string]struct{}, n)
	plates := make([]string, 0, n)
	for len(plates) < n {
		candidate := p.next(r)
		if _, ok := seen[candidate]; ok {
			continue
		}
		seen[candidate] = struct{}{}
		plates = append(plates, candidate)
	}
	return plates, nil
}

func (p *PlatePool) next(r *rand.Rand) string {
	letters := 2
	if r.Float64() < p.LongRate {
		letters = 3
	}

	var b strings.Builder
	b.Grow(letters + 4)
	for i := 0; i < letters; i++ {
		b.WriteByte(p.Letters[r.IntN(len(p.Letters))])
	}
	b.WriteByte('-')
	for i := 0; i < 3; i++ {
		b.WriteByte(p.Digits[r.IntN(len(p.Digits))])
	}
	return b.String()
}
