package entity

import "time"

// UserData 请求字段的回显，随吐槽记录一起保存
type UserData struct {
	Name             string    `json:"name" bson:"name"`
	Age              string    `json:"age" bson:"age"`
	Appearance       string    `json:"appearance" bson:"appearance"`
	Hobbies          string    `json:"hobbies" bson:"hobbies"`
	Personality      string    `json:"personality" bson:"personality"`
	Occupation       string    `json:"occupation" bson:"occupation"`
	EmbarrassingFact string    `json:"embarrassing_fact" bson:"embarrassing_fact"`
	RoastIntensity   Intensity `json:"roast_intensity" bson:"roast_intensity"`
}

// Roast 一次生成的吐槽记录，创建后不再修改
type Roast struct {
	Id             int64     `gorm:"column:id;primaryKey;autoIncrement"`
	RoastId        string    `gorm:"column:roast_id;type:char(36);uniqueIndex;not null"`
	Content        string    `gorm:"column:roast;type:text;not null"`
	Intensity      Intensity `gorm:"column:intensity;type:varchar(10);index;not null"`
	UserData       UserData  `gorm:"column:user_data;type:json;serializer:json"`
	CreatedAt      time.Time `gorm:"column:created_at;not null"`
	ProcessingTime float64   `gorm:"column:processing_time;type:double;not null"`
}

func (Roast) TableName() string {
	return "roasts"
}

// IntensityCount 按强度分组的计数
type IntensityCount struct {
	Intensity Intensity `gorm:"column:intensity"`
	Count     int64     `gorm:"column:count"`
}
