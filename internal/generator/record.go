package generator

// VehicleRecord 一条合成的车辆/司机门禁快照记录
type VehicleRecord struct {
	PlateNumber     string   // 全局唯一车牌号
	MakeModel       string   // 品牌/车型
	Color           string
	Department      string
	Year            int // [2010, 2023]
	VehicleType     string
	Status          string   // IN / OUT
	CurrentDriver   string   // 为空或属于 AssignedDrivers
	AssignedDrivers []string // 1-3 个互不重复的司机标识
	AccessStatus    string   // Access / No Access / Banned
}
