package server

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/Student-market-place/StudentMarket-sub001/internal/auth"
	"github.com/Student-market-place/StudentMarket-sub001/internal/controller/application"
	"github.com/Student-market-place/StudentMarket-sub001/internal/controller/company"
	"github.com/Student-market-place/StudentMarket-sub001/internal/controller/offer"
	"github.com/Student-market-place/StudentMarket-sub001/internal/controller/review"
	"github.com/Student-market-place/StudentMarket-sub001/internal/controller/school"
	"github.com/Student-market-place/StudentMarket-sub001/internal/controller/skill"
	"github.com/Student-market-place/StudentMarket-sub001/internal/controller/student"
	"github.com/Student-market-place/StudentMarket-sub001/internal/metrics"
	"github.com/Student-market-place/StudentMarket-sub001/internal/middleware"
	"github.com/Student-market-place/StudentMarket-sub001/internal/model"

	// Init swagger doc
	_ "github.com/Student-market-place/StudentMarket-sub001/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *MyServer) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOrigins := strings.Split(s.Cfg.API.AllowOrigins, ",")

	googleOauth := &oauth2.Config{
		ClientID:     s.Cfg.Auth.GoogleClientID,
		ClientSecret: s.Cfg.Auth.GoogleClientSecret,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint:    google.Endpoint,
		RedirectURL: s.Cfg.Auth.OAuthRedirectURL,
	}

	gAuth := auth.NewOauthLoginHandler(s.DB, googleOauth, "https://www.googleapis.com/oauth2/v2/userinfo")
	lAuth := auth.NewLocalAuthHandler(s.DB)
	logout := auth.NewLogoutController(s.Blacklist)

	skillCtl := skill.NewSkillController(s.DB)
	offerCtl := offer.NewOfferController(s.DB)
	applicationCtl := application.NewApplicationController(s.DB, s.Notifier)
	reviewCtl := review.NewReviewController(s.DB)
	studentCtl := student.NewStudentController(s.DB, s.Storage)
	companyCtl := company.NewCompanyController(s.DB, s.Storage)
	schoolCtl := school.NewSchoolController(s.DB)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(metrics.GinMiddleware())
	r.Use(middleware.RateLimiterMiddleware(s.Cfg.API.RateLimitPerSec))

	r.GET("/health", s.healthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		authRoute := v1.Group("/auth")
		{
			authRoute.POST("google/student", gAuth.StudentGoogleLoginHandler)
			authRoute.POST("google/company", gAuth.CompanyGoogleLoginHandler)
			authRoute.GET("google/callback", gAuth.Callback)

			authRoute.POST("login", lAuth.LocalLoginHandler)
			authRoute.POST("register", lAuth.LocalRegisterHandler)
		}

		needAuth := v1.Group("")
		{
			needAuth.Use(middleware.RequireAuth(s.DB), middleware.JwtBlacklistCheck(s.Blacklist))

			needAuth.POST("auth/logout", logout.LogoutHandler)

			skillRoute := needAuth.Group("/skills")
			{
				skillRoute.GET("", skillCtl.GetSkillsHandler)
				skillRoute.POST("", middleware.CheckRole(model.RoleAdmin), skillCtl.CreateSkillHandler)
				skillRoute.DELETE(":id", middleware.CheckRole(model.RoleAdmin), skillCtl.DeleteSkillHandler)
			}

			offerRoute := needAuth.Group("/offers")
			{
				offerRoute.GET("", offerCtl.GetOffersHandler)
				offerRoute.GET(":id", offerCtl.GetOfferHandler)
				offerRoute.POST("", middleware.CheckRole(model.RoleCompany), offerCtl.CreateOfferHandler)
				offerRoute.POST(":id/close", middleware.CheckRole(model.RoleCompany, model.RoleAdmin), offerCtl.CloseOfferHandler)
				offerRoute.DELETE(":id", middleware.CheckRole(model.RoleCompany, model.RoleAdmin), offerCtl.DeleteOfferHandler)

				offerRoute.POST(":id/apply", middleware.CheckRole(model.RoleStudent), applicationCtl.ApplyHandler)
				offerRoute.GET(":id/applications", middleware.CheckRole(model.RoleCompany, model.RoleAdmin), applicationCtl.GetOfferApplicationsHandler)
			}

			applicationRoute := needAuth.Group("/applications")
			{
				applicationRoute.GET("me", middleware.CheckRole(model.RoleStudent), applicationCtl.GetMyApplicationsHandler)
				applicationRoute.POST(":id/decision", middleware.CheckRole(model.RoleCompany, model.RoleAdmin), applicationCtl.DecideHandler)
				applicationRoute.POST(":id/withdraw", middleware.CheckRole(model.RoleStudent, model.RoleAdmin), applicationCtl.WithdrawHandler)
			}

			reviewRoute := needAuth.Group("/reviews")
			{
				reviewRoute.GET(":id", reviewCtl.GetReviewHandler)
				reviewRoute.POST("", middleware.CheckRole(model.RoleStudent), reviewCtl.CreateReviewHandler)
			}

			studentRoute := needAuth.Group("/student")
			{
				studentRoute.GET("available", middleware.CheckRole(model.RoleCompany, model.RoleSchool, model.RoleAdmin), studentCtl.GetAvailableStudents)
				studentRoute.GET("myprofile", middleware.CheckRole(model.RoleStudent), studentCtl.GetMyProfile)
				studentRoute.PATCH("profile", middleware.CheckRole(model.RoleStudent), studentCtl.EditStudentProfile)
				studentRoute.POST("cv", middleware.CheckRole(model.RoleStudent), middleware.SizeLimit(10<<20), studentCtl.UploadCV)
				studentRoute.POST("avatar", middleware.CheckRole(model.RoleStudent), middleware.SizeLimit(5<<20), studentCtl.UploadAvatar)
				studentRoute.GET(":id", studentCtl.GetStudentByID)
				studentRoute.GET(":id/cv", studentCtl.GetCVLink)
			}

			needAuth.GET("students/me/history", middleware.CheckRole(model.RoleStudent), reviewCtl.GetMyHistoryHandler)
			needAuth.GET("students/:id/history", reviewCtl.GetStudentHistoryHandler)

			companyRoute := needAuth.Group("/company")
			{
				companyRoute.GET("", companyCtl.GetCompanies)
				companyRoute.GET("myprofile", middleware.CheckRole(model.RoleCompany), companyCtl.GetMyCompanyProfile)
				companyRoute.PATCH("profile", middleware.CheckRole(model.RoleCompany), companyCtl.EditCompanyProfile)
				companyRoute.POST("logo", middleware.CheckRole(model.RoleCompany), middleware.SizeLimit(5<<20), companyCtl.UploadLogo)
				companyRoute.GET(":id", companyCtl.GetCompanyByID)
				companyRoute.GET(":id/reviews", reviewCtl.GetCompanyReviewsHandler)
			}

			schoolRoute := needAuth.Group("/school")
			{
				schoolRoute.GET("", schoolCtl.GetSchools)
				schoolRoute.GET("myprofile", middleware.CheckRole(model.RoleSchool), schoolCtl.GetMySchoolProfile)
				schoolRoute.PATCH("profile", middleware.CheckRole(model.RoleSchool), schoolCtl.EditSchoolProfile)
				schoolRoute.GET("students", middleware.CheckRole(model.RoleSchool), schoolCtl.GetMyStudents)
				schoolRoute.GET(":id", schoolCtl.GetSchoolByID)
			}
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func (s *MyServer) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}
