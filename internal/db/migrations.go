package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'vehicle_status') THEN
			CREATE TYPE vehicle_status AS ENUM ('available', 'in-use', 'maintenance');
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'trip_status') THEN
			CREATE TYPE trip_status AS ENUM ('todo', 'in-progress', 'completed');
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'maintenance_type') THEN
			CREATE TYPE maintenance_type AS ENUM ('tire-change', 'oil-change', 'revision', 'repair');
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'tire_status') THEN
			CREATE TYPE tire_status AS ENUM ('good', 'worn', 'replaced');
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_role') THEN
			CREATE TYPE user_role AS ENUM ('admin', 'driver');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		firstname VARCHAR(64) NOT NULL,
		lastname VARCHAR(64) NOT NULL,
		email VARCHAR(128) NOT NULL,
		password VARCHAR(128) NOT NULL,
		role user_role NOT NULL DEFAULT 'driver',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users (email);`,
	`CREATE TABLE IF NOT EXISTS trucks (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		plate_number VARCHAR(32) NOT NULL,
		brand VARCHAR(64) NOT NULL,
		model VARCHAR(64) NOT NULL,
		year INTEGER NOT NULL,
		mileage DOUBLE PRECISION NOT NULL DEFAULT 0,
		status vehicle_status NOT NULL DEFAULT 'available',
		fuel_consumption DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_trucks_plate_number ON trucks (plate_number);`,
	`CREATE TABLE IF NOT EXISTS trailers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		plate_number VARCHAR(32) NOT NULL,
		type VARCHAR(64) NOT NULL,
		capacity DOUBLE PRECISION NOT NULL,
		status vehicle_status NOT NULL DEFAULT 'available',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_trailers_plate_number ON trailers (plate_number);`,
	`CREATE TABLE IF NOT EXISTS trips (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		driver_id UUID NOT NULL REFERENCES users (id),
		truck_id UUID NOT NULL REFERENCES trucks (id),
		trailer_id UUID REFERENCES trailers (id),
		departure VARCHAR(128) NOT NULL,
		destination VARCHAR(128) NOT NULL,
		departure_date TIMESTAMPTZ NOT NULL,
		arrival_date TIMESTAMPTZ,
		start_mileage DOUBLE PRECISION,
		end_mileage DOUBLE PRECISION,
		fuel_used DOUBLE PRECISION NOT NULL DEFAULT 0,
		status trip_status NOT NULL DEFAULT 'todo',
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_trips_driver_id ON trips (driver_id);`,
	`CREATE INDEX IF NOT EXISTS idx_trips_truck_id ON trips (truck_id);`,
	`CREATE INDEX IF NOT EXISTS idx_trips_status ON trips (status);`,
	`CREATE TABLE IF NOT EXISTS maintenances (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		truck_id UUID NOT NULL REFERENCES trucks (id) ON DELETE CASCADE,
		type maintenance_type NOT NULL,
		description TEXT NOT NULL,
		date TIMESTAMPTZ NOT NULL,
		cost DOUBLE PRECISION NOT NULL DEFAULT 0,
		mileage DOUBLE PRECISION NOT NULL,
		next_maintenance_at DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_maintenances_truck_id ON maintenances (truck_id);`,
	`CREATE INDEX IF NOT EXISTS idx_maintenances_date ON maintenances (date);`,
	`CREATE TABLE IF NOT EXISTS tires (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		truck_id UUID NOT NULL REFERENCES trucks (id) ON DELETE CASCADE,
		position VARCHAR(32) NOT NULL,
		brand VARCHAR(64) NOT NULL,
		installation_date TIMESTAMPTZ NOT NULL,
		mileage_at_installation DOUBLE PRECISION NOT NULL,
		status tire_status NOT NULL DEFAULT 'good',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_tires_truck_id ON tires (truck_id);`,
	`CREATE OR REPLACE FUNCTION set_updated_at()
	RETURNS TRIGGER AS $$
	BEGIN
		NEW.updated_at = NOW();
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_users_updated_at') THEN
			CREATE TRIGGER trg_users_updated_at
				BEFORE UPDATE ON users
				FOR EACH ROW
				EXECUTE PROCEDURE set_updated_at();
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_trucks_updated_at') THEN
			CREATE TRIGGER trg_trucks_updated_at
				BEFORE UPDATE ON trucks
				FOR EACH ROW
				EXECUTE PROCEDURE set_updated_at();
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_trailers_updated_at') THEN
			CREATE TRIGGER trg_trailers_updated_at
				BEFORE UPDATE ON trailers
				FOR EACH ROW
				EXECUTE PROCEDURE set_updated_at();
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_trips_updated_at') THEN
			CREATE TRIGGER trg_trips_updated_at
				BEFORE UPDATE ON trips
				FOR EACH ROW
				EXECUTE PROCEDURE set_updated_at();
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_maintenances_updated_at') THEN
			CREATE TRIGGER trg_maintenances_updated_at
				BEFORE UPDATE ON maintenances
				FOR EACH ROW
				EXECUTE PROCEDURE set_updated_at();
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_tires_updated_at') THEN
			CREATE TRIGGER trg_tires_updated_at
				BEFORE UPDATE ON tires
				FOR EACH ROW
				EXECUTE PROCEDURE set_updated_at();
		END IF;
	END
	$$;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
