package generator

import "fmt"

// 各字段的固定取值池，进程启动后只读
var (
	MakesModels = []string{
		"Toyota Camry", "Honda Civic", "Ford F-150", "Chevrolet Express",
		"Tesla Model 3", "Honda PCX", "Nissan Altima", "Jeep Wrangler",
		"BMW 330i", "Mercedes C-Class", "Hyundai Sonata", "Kia Sportage",
	}

	Colors = []string{"White", "Black", "Silver", "Blue", "Red", "Gray", "Green"}

	Departments = []string{
		"IT Department", "HR Department", "Operations", "Logistics",
		"Executive", "Finance", "Marketing", "Sales", "Security",
	}

	VehicleTypes = []string{"Car", "Truck", "Van", "SUV", "Motorcycle"}

	Statuses = []string{"IN", "OUT"}

	AccessStatuses = []string{"Access", "No Access", "Banned"}
)

const (
	plateLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	plateDigits  = "0123456789"

	yearMin = 2010
	yearMax = 2023

	codedDriverCount = 500
)

var driverAliases = []string{"Alex", "Jamie", "Taylor", "Jordan", "Casey"}

// BuildDriverPool 构建全量司机池：编号司机 DRV001..DRV500 加少量别名
func BuildDriverPool() []string {
	pool := make([]string, 0, codedDriverCount+len(driverAliases))
	for i := 1; i <= codedDriverCount; i++ {
		pool = append(pool, fmt.Sprintf("DRV%03d", i))
	}
	return append(pool, driverAliases...)
}
