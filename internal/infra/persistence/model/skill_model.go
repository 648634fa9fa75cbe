package model

// SkillModel mirrors the 'skills' catalog table.
type SkillModel struct {
	ID    int    `gorm:"primaryKey;autoIncrement"`
	Skill string `gorm:"column:skill;type:varchar(100);not null;unique"`
}

// TableName explicitly sets the table name for GORM.
func (SkillModel) TableName() string {
	return "skills"
}

// RescuerSkillModel mirrors the 'rescuer_skills' association table.
// The primary key is the (rescuer_id, skill_id) pair.
type RescuerSkillModel struct {
	RescuerID string `gorm:"column:rescuer_id;type:varchar(64);primaryKey"`
	SkillID   int    `gorm:"column:skill_id;primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (RescuerSkillModel) TableName() string {
	return "rescuer_skills"
}
