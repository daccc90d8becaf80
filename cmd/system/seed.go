package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/orienta-pe/orienta_backend/config"
	"github.com/orienta-pe/orienta_backend/internal/repo"
	entquestion "github.com/orienta-pe/orienta_backend/internal/repo/hollandquestion"
	entuser "github.com/orienta-pe/orienta_backend/internal/repo/user"
	"github.com/orienta-pe/orienta_backend/internal/riasec"
	"github.com/orienta-pe/orienta_backend/pkg/authorize"
	"github.com/orienta-pe/orienta_backend/pkg/database"
	"github.com/orienta-pe/orienta_backend/pkg/util/password"
)

// sampleQuestion is one row of the starter inventory bank.
type sampleQuestion struct {
	text     string
	section  riasec.Section
	category riasec.Category
}

// starterBank is a minimal bank covering every section and category, meant
// for fresh installs. Production banks are loaded through the admin API.
var starterBank = []sampleQuestion{
	{"Reparar objetos o aparatos en casa", riasec.SectionActividades, riasec.CategoryRealista},
	{"Investigar por qué ocurre un fenómeno natural", riasec.SectionActividades, riasec.CategoryInvestigador},
	{"Dibujar, pintar o componer música", riasec.SectionActividades, riasec.CategoryArtistico},
	{"Ayudar a un compañero con sus tareas", riasec.SectionActividades, riasec.CategorySocial},
	{"Organizar una venta para recaudar fondos", riasec.SectionActividades, riasec.CategoryEmprendedor},
	{"Llevar el registro ordenado de tus gastos", riasec.SectionActividades, riasec.CategoryConvencional},
	{"Usar herramientas manuales con precisión", riasec.SectionHabilidades, riasec.CategoryRealista},
	{"Resolver problemas de matemática o ciencia", riasec.SectionHabilidades, riasec.CategoryInvestigador},
	{"Expresar ideas mediante el arte", riasec.SectionHabilidades, riasec.CategoryArtistico},
	{"Escuchar y aconsejar a otras personas", riasec.SectionHabilidades, riasec.CategorySocial},
	{"Convencer a otros de apoyar una idea", riasec.SectionHabilidades, riasec.CategoryEmprendedor},
	{"Clasificar documentos siguiendo un sistema", riasec.SectionHabilidades, riasec.CategoryConvencional},
	{"Trabajar como técnico o mecánico", riasec.SectionOcupaciones, riasec.CategoryRealista},
	{"Trabajar como científico o analista", riasec.SectionOcupaciones, riasec.CategoryInvestigador},
	{"Trabajar como diseñador o músico", riasec.SectionOcupaciones, riasec.CategoryArtistico},
	{"Trabajar como docente o consejero", riasec.SectionOcupaciones, riasec.CategorySocial},
	{"Trabajar como gerente o vendedor", riasec.SectionOcupaciones, riasec.CategoryEmprendedor},
	{"Trabajar como contador o administrativo", riasec.SectionOcupaciones, riasec.CategoryConvencional},
}

func NewSeedCommand() *cobra.Command {
	var adminEmail, adminPassword string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the platform admin account and the starter question bank",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			if err := seedAdmin(ctx, client, cfg, adminEmail, adminPassword); err != nil {
				return err
			}
			if err := seedQuestionBank(ctx, client); err != nil {
				return err
			}

			fmt.Println("Seed completed successfully.")
			return nil
		},
	}

	cmd.Flags().StringVar(&adminEmail, "admin-email", "", "email for the platform admin account (required)")
	cmd.Flags().StringVar(&adminPassword, "admin-password", "", "password for the platform admin account (required)")
	_ = cmd.MarkFlagRequired("admin-email")
	_ = cmd.MarkFlagRequired("admin-password")

	return cmd
}

func seedAdmin(ctx context.Context, client *repo.Client, cfg *config.Config, email, pass string) error {
	exists, err := client.User.Query().
		Where(entuser.Email(email), entuser.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if exists {
		fmt.Println("Admin account already exists, skipping.")
		return nil
	}

	passHash, err := password.Hash(pass)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	u, err := client.User.Create().
		SetEmail(email).
		SetPasswordHash(passHash).
		SetFirstName("Admin").
		SetLastName("Orienta").
		SetRole("admin").
		SetIsProfileComplete(true).
		SetEmailVerified(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	// Grant the sys-domain role
	dsn := database.NewDSN(cfg.CasbinDatabase)
	enforcer, cleanup, err := authorize.NewEnforcer(cfg.Authorization.CasbinModelPath, dsn)
	if err != nil {
		return fmt.Errorf("failed to create enforcer: %w", err)
	}
	defer cleanup(context.Background())

	auth, err := authorize.NewAuthorization(enforcer)
	if err != nil {
		return fmt.Errorf("failed to create authorization: %w", err)
	}
	if err := authorize.AssignPlatformAdminRole(ctx, auth, u.ID.String()); err != nil {
		return fmt.Errorf("failed to grant admin role: %w", err)
	}

	fmt.Printf("Admin account created: %s\n", email)
	return nil
}

func seedQuestionBank(ctx context.Context, client *repo.Client) error {
	n, err := client.HollandQuestion.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count questions: %w", err)
	}
	if n > 0 {
		fmt.Printf("Question bank already has %d questions, skipping.\n", n)
		return nil
	}

	for i, q := range starterBank {
		_, err := client.HollandQuestion.Create().
			SetText(q.text).
			SetSection(entquestion.Section(q.section)).
			SetCategory(entquestion.Category(q.category)).
			SetPosition(i + 1).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create question %d: %w", i+1, err)
		}
	}

	fmt.Printf("Seeded %d inventory questions.\n", len(starterBank))
	return nil
}
