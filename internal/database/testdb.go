package database

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	m "github.com/Student-market-place/StudentMarket-sub001/internal/model"
	"github.com/Student-market-place/StudentMarket-sub001/internal/utilities"
)

var (
	testDBInstance *DBinstanceStruct
	testDBErr      error
	testDBOnce     sync.Once
)

// Exported test users & profiles
var (
	TestAdminUser    m.User
	TestUserStudent1 m.User
	TestUserStudent2 m.User
	TestUserCompany1 m.User
	TestUserCompany2 m.User
	TestUserSchool1  m.User
	TestStudent1     m.Student
	TestStudent2     m.Student
	TestCompany1     m.Company
	TestCompany2     m.Company
	TestSchool1      m.School

	// Add exported plain password
	TestSeedPassword = "SeedPass123!"

	// Exported seeded skills
	TestSkillGo    m.Skill
	TestSkillSQL   m.Skill
	TestSkillReact m.Skill

	// Exported seeded offers
	TestOffer1 m.CompanyOffer // open, company 1
	TestOffer2 m.CompanyOffer // closed, company 2
	TestOffer3 m.CompanyOffer // open, company 1, alternance
)

// GetTestDB returns an in-process sqlite database migrated with the full
// schema and seeded with sample fixtures. The same instance is shared by
// every test in the package.
func GetTestDB() (*DBinstanceStruct, error) {
	testDBOnce.Do(func() {
		gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
		if err != nil {
			testDBErr = err
			return
		}

		db := &DBinstanceStruct{DB: gdb}
		if err := db.Migrate(); err != nil {
			testDBErr = fmt.Errorf("migrate test db: %w", err)
			return
		}
		if err := seedTestData(db); err != nil {
			testDBErr = fmt.Errorf("seed test db: %w", err)
			return
		}
		testDBInstance = db
	})
	return testDBInstance, testDBErr
}

// seedTestData inserts sample users, profiles, skills and offers.
func seedTestData(db *DBinstanceStruct) error {

	hashedPwd, err := utilities.HashPassword(TestSeedPassword)
	if err != nil {
		return err
	}

	userSpecs := []struct {
		username string
		email    string
		role     string
	}{
		{"student_1", "student1@example.com", m.RoleStudent},
		{"student_2", "student2@example.com", m.RoleStudent},
		{"company_user_1", "company1@example.com", m.RoleCompany},
		{"company_user_2", "company2@example.com", m.RoleCompany},
		{"school_user_1", "school1@example.com", m.RoleSchool},
		{"admin_user", "admin@example.com", m.RoleAdmin},
	}

	users := make([]m.User, 0, len(userSpecs))
	for _, s := range userSpecs {
		email := s.email
		users = append(users, m.User{
			ID:          uuid.New(),
			Username:    s.username,
			ContactInfo: m.ContactInfo{Email: &email},
			Role:        s.role,
			Password:    hashedPwd,
		})
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}
	for _, u := range users {
		switch u.Username {
		case "student_1":
			TestUserStudent1 = u
		case "student_2":
			TestUserStudent2 = u
		case "company_user_1":
			TestUserCompany1 = u
		case "company_user_2":
			TestUserCompany2 = u
		case "school_user_1":
			TestUserSchool1 = u
		case "admin_user":
			TestAdminUser = u
		}
	}

	TestSchool1 = m.School{
		UserID: TestUserSchool1.ID,
		Name:   "EFREI Paris",
		Domain: "efrei.fr",
	}
	if err := db.Create(&TestSchool1).Error; err != nil {
		return err
	}

	skills := []m.Skill{{Name: "Go"}, {Name: "SQL"}, {Name: "React"}}
	if err := db.Create(&skills).Error; err != nil {
		return err
	}
	TestSkillGo, TestSkillSQL, TestSkillReact = skills[0], skills[1], skills[2]

	stage, alternance := m.StudentStatusStage, m.StudentStatusAlternance
	available := true
	students := []m.Student{
		{
			UserID:   TestUserStudent1.ID,
			SchoolID: &TestSchool1.UserID,
			EditableStudentInfo: m.EditableStudentInfo{
				FirstName:   "Alice",
				LastName:    "Martin",
				Status:      &stage,
				IsAvailable: &available,
			},
			Skills: []m.Skill{TestSkillGo, TestSkillSQL},
		},
		{
			UserID:   TestUserStudent2.ID,
			SchoolID: &TestSchool1.UserID,
			EditableStudentInfo: m.EditableStudentInfo{
				FirstName:   "Benoit",
				LastName:    "Durand",
				Status:      &alternance,
				IsAvailable: &available,
			},
			Skills: []m.Skill{TestSkillReact},
		},
	}
	if err := db.Create(&students).Error; err != nil {
		return err
	}
	TestStudent1, TestStudent2 = students[0], students[1]

	sizeM, sizeL := "M", "L"
	companies := []m.Company{
		{
			UserID: TestUserCompany1.ID,
			EditableCompanyInfo: m.EditableCompanyInfo{
				Name:        "TechNova",
				Description: "Innovative platform solutions",
				Industry:    "Software",
				Size:        &sizeM,
			},
		},
		{
			UserID: TestUserCompany2.ID,
			EditableCompanyInfo: m.EditableCompanyInfo{
				Name:        "DataForge",
				Description: "Data analytics consulting",
				Industry:    "Consulting",
				Size:        &sizeL,
			},
		},
	}
	if err := db.Create(&companies).Error; err != nil {
		return err
	}
	TestCompany1, TestCompany2 = companies[0], companies[1]

	start := time.Now().AddDate(0, 1, 0)
	offers := []m.CompanyOffer{
		{
			CompanyID: TestCompany1.UserID,
			EditableOfferInfo: m.EditableOfferInfo{
				Title:       "Backend Engineer Intern",
				Description: "Work on Go microservices and database layers.",
				Type:        m.OfferTypeStage,
				StartDate:   start,
				Tags:        pq.StringArray{"go", "backend", "api"},
			},
			Status: m.OfferStatusOpen,
			Skills: []m.Skill{TestSkillGo, TestSkillSQL},
		},
		{
			CompanyID: TestCompany2.UserID,
			EditableOfferInfo: m.EditableOfferInfo{
				Title:       "Data Analyst Intern",
				Description: "Support data cleansing and dashboard creation.",
				Type:        m.OfferTypeStage,
				StartDate:   start,
				Tags:        pq.StringArray{"data", "sql"},
			},
			Status: m.OfferStatusClosed,
			Skills: []m.Skill{TestSkillSQL},
		},
		{
			CompanyID: TestCompany1.UserID,
			EditableOfferInfo: m.EditableOfferInfo{
				Title:       "Frontend Apprentice",
				Description: "Build the component library in React.",
				Type:        m.OfferTypeAlternance,
				StartDate:   start,
				Tags:        pq.StringArray{"react", "ui"},
			},
			Status: m.OfferStatusOpen,
			Skills: []m.Skill{TestSkillReact},
		},
	}
	if err := db.Create(&offers).Error; err != nil {
		return err
	}
	TestOffer1, TestOffer2, TestOffer3 = offers[0], offers[1], offers[2]

	return nil
}
