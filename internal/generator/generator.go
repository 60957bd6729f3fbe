package generator

import (
	"math/rand/v2"
	"time"

	"github.com/SmartGateSim/SmartGateSim/internal/common/config"
)

// Progress 每生成一条记录后的进度回调
type Progress func(done, total int)

// Generator 按配置合成车辆记录数据集
type Generator struct {
	cfg     config.GeneratorConfig
	drivers []string
	plates  *PlatePool
	rng     *rand.Rand
}

// New 创建Generator；seed为0时按当前时间播种，否则完全确定
func New(cfg config.GeneratorConfig) *Generator {
	var rng *rand.Rand
	if cfg.Seed == 0 {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>32))
	} else {
		rng = rand.New(rand.NewPCG(uint64(cfg.Seed), uint64(cfg.Seed)))
	}

	return &Generator{
		cfg:     cfg,
		drivers: BuildDriverPool(),
		plates:  NewPlatePool(cfg.LongPlateRate),
		rng:     rng,
	}
}

// Generate 生成 RecordCount 条记录：先生成唯一车牌池，再逐条独立采样。
// progress 可为nil。
func (g *Generator) Generate(progress Progress) ([]VehicleRecord, error) {
	n := g.cfg.RecordCount
	plates, err := g.plates.Generate(n, g.rng)
	if err != nil {
		return nil, err
	}

	records := make([]VehicleRecord, n)
	for i := 0; i < n; i++ {
		records[i] = g.sample(plates[i])
		if progress != nil {
			progress(i+1, n)
		}
	}
	return records, nil
}

func (g *Generator) sample(plate string) VehicleRecord {
	assigned := g.sampleDrivers()

	current := ""
	if g.rng.Float64() > g.cfg.NoDriverRate {
		current = assigned[g.rng.IntN(len(assigned))]
	}

	return VehicleRecord{
		PlateNumber:     plate,
		MakeModel:       MakesModels[g.rng.IntN(len(MakesModels))],
		Color:           Colors[g.rng.IntN(len(Colors))],
		Department:      Departments[g.rng.IntN(len(Departments))],
		Year:            yearMin + g.rng.IntN(yearMax-yearMin+1),
		VehicleType:     VehicleTypes[g.rng.IntN(len(VehicleTypes))],
		Status:          Statuses[g.rng.IntN(len(Statuses))],
		CurrentDriver:   current,
		AssignedDrivers: assigned,
		AccessStatus:    AccessStatuses[g.rng.IntN(len(AccessStatuses))],
	}
}

// sampleDrivers 从司机池无放回抽取1-3个司机，数量在{1,2,3}上均匀
func (g *Generator) sampleDrivers() []string {
	count := 1 + g.rng.IntN(3)
	picked := make([]string, 0, count)
	seen := make(map[int]struct{}, count)
	for len(picked) < count {
		idx := g.rng.IntN(len(g.drivers))
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		picked = append(picked, g.drivers[idx])
	}
	return picked
}
