// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command portal-admin grants or revokes the administrator capability of a
// staff portal account. The HTTP surface offers no way to do this.
//
// Usage:
//
//	portal-admin -id <account-id> [-revoke]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/staff-portal/internal/config"
	"github.com/MKhiriev/staff-portal/internal/logger"
	"github.com/MKhiriev/staff-portal/internal/service"
	"github.com/MKhiriev/staff-portal/internal/store"
)

func main() {
	fs := flag.NewFlagSet("portal-admin", flag.ExitOnError)
	id := fs.String("id", "", "account id to update")
	revoke := fs.Bool("revoke", false, "revoke the admin capability instead of granting it")
	_ = fs.Parse(os.Args[1:])

	if *id == "" {
		fs.Usage()
		os.Exit(2)
	}

	log := logger.NewCLILogger("portal-admin")

	cfg, err := config.GetEnvConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	admin := service.NewAdminService(storages.ProfileRepository, storages.ProfessionalRepository, log)

	if err = admin.SetAdmin(ctx, *id, !*revoke); err != nil {
		log.Error().Err(err).Str("id", *id).Msg("error updating admin capability")
		os.Exit(1)
	}

	if *revoke {
		fmt.Printf("admin capability revoked for %s\n", *id)
		return
	}
	fmt.Printf("admin capability granted to %s\n", *id)
}
