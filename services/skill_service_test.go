package services_test

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"skillswap-api/models"
	"skillswap-api/services"
)

func seedSkillCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()

	skills := []models.Skill{
		{Name: "Python Programming", Description: "Backend scripting", Category: "Technology"},
		{Name: "Graphic Design", Description: "Logos and branding", Category: "Design"},
		{Name: "Guitar", Description: "Acoustic lessons", Category: "Music"},
		{Name: "Go Programming", Description: "Services and tooling", Category: "Technology"},
	}
	for i := range skills {
		if err := db.Create(&skills[i]).Error; err != nil {
			t.Fatalf("failed to seed skill %s: %v", skills[i].Name, err)
		}
	}
}

func skillNames(skills []models.Skill) []string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return names
}

func TestGetAllSkills_OrderedByName(t *testing.T) {
	db := setupTestDB(t)
	seedSkillCatalog(t, db)
	svc := services.NewSkillService(db)

	skills, err := svc.GetAllSkills()
	if err != nil {
		t.Fatalf("GetAllSkills failed: %v", err)
	}

	want := []string{"Go Programming", "Graphic Design", "Guitar", "Python Programming"}
	got := skillNames(skills)
	if len(got) != len(want) {
		t.Fatalf("expected %d skills, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestSearchSkills_MatchesNameAndDescription(t *testing.T) {
	db := setupTestDB(t)
	seedSkillCatalog(t, db)
	svc := services.NewSkillService(db)

	skills, err := svc.SearchSkills("programming")
	if err != nil {
		t.Fatalf("SearchSkills failed: %v", err)
	}
	if got := skillNames(skills); len(got) != 2 || got[0] != "Go Programming" || got[1] != "Python Programming" {
		t.Fatalf("expected programming skills ordered by name, got %v", got)
	}

	// Description matches too
	skills, err = svc.SearchSkills("LOGOS")
	if err != nil {
		t.Fatalf("SearchSkills failed: %v", err)
	}
	if got := skillNames(skills); len(got) != 1 || got[0] != "Graphic Design" {
		t.Fatalf("expected description match for Graphic Design, got %v", got)
	}
}

func TestGetSkillsByCategory_ExactMatch(t *testing.T) {
	db := setupTestDB(t)
	seedSkillCatalog(t, db)
	svc := services.NewSkillService(db)

	skills, err := svc.GetSkillsByCategory("Technology")
	if err != nil {
		t.Fatalf("GetSkillsByCategory failed: %v", err)
	}
	if got := skillNames(skills); len(got) != 2 || got[0] != "Go Programming" {
		t.Fatalf("expected two Technology skills ordered by name, got %v", got)
	}

	skills, err = svc.GetSkillsByCategory("technology")
	if err != nil {
		t.Fatalf("GetSkillsByCategory failed: %v", err)
	}
	if len(skills) != 0 {
		t.Fatalf("expected exact category match only, got %v", skillNames(skills))
	}
}

func TestCreateSkill_Validation(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewSkillService(db)

	if _, err := svc.CreateSkill("x", "", ""); !errors.Is(err, services.ErrSkillNameTooShort) {
		t.Fatalf("expected ErrSkillNameTooShort, got: %v", err)
	}
	if _, err := svc.CreateSkill("  x  ", "", ""); !errors.Is(err, services.ErrSkillNameTooShort) {
		t.Fatalf("expected ErrSkillNameTooShort for padded name, got: %v", err)
	}

	skill, err := svc.CreateSkill("Welding", "MIG and TIG", "Trades")
	if err != nil {
		t.Fatalf("CreateSkill failed: %v", err)
	}
	if skill.ID == 0 {
		t.Fatal("expected created skill to have an ID")
	}

	if _, err := svc.CreateSkill("Welding", "", ""); !errors.Is(err, services.ErrSkillNameTaken) {
		t.Fatalf("expected ErrSkillNameTaken, got: %v", err)
	}
}

func TestDeleteSkill_CascadesToSwapsAndProfiles(t *testing.T) {
	db := setupTestDB(t)
	python, design := swapPair(t, db)
	workflow := services.NewSwapWorkflowService(db)
	svc := services.NewSkillService(db)

	swap, err := workflow.CreateSwapRequest("alice", "bob", python.ID, design.ID, "")
	if err != nil {
		t.Fatalf("CreateSwapRequest failed: %v", err)
	}

	if err := svc.DeleteSkill(python.ID); err != nil {
		t.Fatalf("DeleteSkill failed: %v", err)
	}

	var count int64
	db.Model(&models.SwapRequest{}).Where("id = ?", swap.ID).Count(&count)
	if count != 0 {
		t.Fatal("expected dependent swap request to be removed")
	}

	db.Table("profile_skills_offered").Where("skill_id = ?", python.ID).Count(&count)
	if count != 0 {
		t.Fatal("expected offered-skill links to be removed")
	}

	db.Model(&models.Skill{}).Where("id = ?", python.ID).Count(&count)
	if count != 0 {
		t.Fatal("expected skill row to be removed")
	}
}

func TestDeleteSkill_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewSkillService(db)

	if err := svc.DeleteSkill(999); !errors.Is(err, services.ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got: %v", err)
	}
}
