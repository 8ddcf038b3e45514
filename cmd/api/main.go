package main

import (
    "fmt"
    "log"

    "salesledger/internal/config"
    "salesledger/internal/db"
    httpserver "salesledger/internal/http"
    "salesledger/internal/models"
    "salesledger/internal/seed"
)

func main() {
    cfg := config.Load()

    gdb := db.Connect(cfg.DSN)
    db.AutoMigrate(gdb,
        &models.User{},
        &models.Hierarchy{},
        &models.Package{},
        &models.Prelead{},
        &models.Lead{},
        &models.Opportunity{},
        &models.SalesTeamMember{},
        &models.AuditLog{},
    )

    if cfg.SeedOnBoot {
        if err := seed.FirstSetup(gdb); err != nil {
            log.Fatalf("❌ Seed failed: %v", err)
        }
    }

    r := httpserver.NewRouter(gdb, cfg.JWTSecret)
    log.Printf("🚀 Server listening on :%s\n", cfg.AppPort)
    r.Run(fmt.Sprintf(":%s", cfg.AppPort))
}
