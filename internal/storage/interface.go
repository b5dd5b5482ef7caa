package storage

// 槽位名沿用浏览器端 localStorage 的键名，快照只覆盖不删除
const (
	SlotRequirement = "travelPlanData"
	SlotItinerary   = "itineraryData"
)

// Store 按命名槽位持久化快照。
// Set 序列化写入，Get 反序列化读出，Clear 清空单个槽位。
type Store interface {
	Get(slot string, v interface{}) error
	Set(slot string, v interface{}) error
	Clear(slot string) error

	// 存储管理
	Init() error
	Close() error
}
