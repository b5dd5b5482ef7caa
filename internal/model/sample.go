package model

import "fmt"

var dayTemplates = []struct {
	attractions [3]string
	dining      [3]string
}{
	{
		attractions: [3]string{"故宫博物院", "天安门广场", "三里屯"},
		dining:      [3]string{"景区附近小吃", "王府井美食街", "三里屯餐厅"},
	},
	{
		attractions: [3]string{"长城", "奥林匹克公园", "国贸CBD"},
		dining:      [3]string{"农家院午餐", "簋街", "CBD餐厅"},
	},
	{
		attractions: [3]string{"颐和园", "什刹海", "前门大街"},
		dining:      [3]string{"园内餐厅", "南锣鼓巷", "前门老字号"},
	},
}

var slotTimes = [3]string{"08:00-12:00", "13:30-17:30", "18:30-21:00"}
var slotTransport = [3]string{"地铁+步行", "公交", "出租车"}

// DemoItinerary 生成确定性的演示行程，供 Mock 模式和内置示例使用。
// scale 用于调整方案时整体缩放预算。
func DemoItinerary(days int, scale float64) Itinerary {
	if days <= 0 {
		days = 3
	}
	if scale <= 0 {
		scale = 1
	}

	it := Itinerary{
		Title:     "演示旅游方案",
		TotalDays: days,
	}

	for day := 1; day <= days; day++ {
		budgets := [3]float64{
			(180 + float64(day)*20) * scale,
			(220 + float64(day)*15) * scale,
			(160 + float64(day)*10) * scale,
		}

		plan := DailyPlan{
			Day:  day,
			Date: fmt.Sprintf("第%d天", day),
		}
		for slot := 0; slot < 3; slot++ {
			attraction := fmt.Sprintf("景点%d-%d", day, slot+1)
			dining := fmt.Sprintf("餐厅%d-%d", day, slot+1)
			if day <= len(dayTemplates) {
				attraction = dayTemplates[day-1].attractions[slot]
				dining = dayTemplates[day-1].dining[slot]
			}
			plan.Schedule = append(plan.Schedule, ScheduleItem{
				Time:           slotTimes[slot],
				Attraction:     attraction,
				Transportation: slotTransport[slot],
				Dining:         dining,
				Budget:         budgets[slot],
			})
			plan.DailyTotal += budgets[slot]
		}

		it.DailyPlans = append(it.DailyPlans, plan)
		it.TotalBudget += plan.DailyTotal
	}

	it.Tips = []string{
		"提前在线购票可以避开景区售票排队",
		"关注景区开放时间，部分场馆周一闭馆",
	}
	it.SpecialNotes = "行程仅供参考，请结合实际天气和人流情况安排出行"
	return it
}

// SampleItinerary 是展示页在快照缺失或解析失败时的内置示例行程。
func SampleItinerary() Itinerary {
	return DemoItinerary(3, 1)
}
