package db

import "database/sql"

// EnsureSchema creates the core tables when missing. Availability rows are
// keyed uniquely on (hotel_id, room_type, date) so duplicate inventory
// creation is rejected by the storage engine as well as by the service.
func EnsureSchema(dbh *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL,
	password_hash VARCHAR(255) NOT NULL,
	role VARCHAR(50) NOT NULL DEFAULT 'traveler',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS hotels (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	owner_id BIGINT NOT NULL,
	name VARCHAR(255) NOT NULL,
	location VARCHAR(255),
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_owner (owner_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS hotel_room_types (
	room_type_id BIGINT AUTO_INCREMENT PRIMARY KEY,
	hotel_id BIGINT NOT NULL,
	room_type_name VARCHAR(100) NOT NULL,
	description TEXT,
	base_price_per_night DECIMAL(10,2) NOT NULL,
	max_guests INT NOT NULL DEFAULT 2,
	amenities TEXT,
	total_rooms INT NOT NULL DEFAULT 0,
	is_active TINYINT(1) NOT NULL DEFAULT 1,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_hotel_room_name (hotel_id, room_type_name),
	KEY idx_hotel (hotel_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS room_availability (
	availability_id BIGINT AUTO_INCREMENT PRIMARY KEY,
	hotel_id BIGINT NOT NULL,
	room_type VARCHAR(100) NOT NULL,
	date DATE NOT NULL,
	total_rooms INT NOT NULL DEFAULT 0,
	available_rooms INT NOT NULL DEFAULT 0,
	price_per_night DECIMAL(10,2) NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_hotel_room_date (hotel_id, room_type, date),
	KEY idx_hotel_room (hotel_id, room_type)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS hotel_bookings (
	booking_id BIGINT AUTO_INCREMENT PRIMARY KEY,
	hotel_id BIGINT NOT NULL,
	traveler_id BIGINT NOT NULL,
	room_type VARCHAR(100) NOT NULL,
	check_in_date DATE NOT NULL,
	check_out_date DATE NOT NULL,
	num_guests INT NOT NULL DEFAULT 1,
	total_price DECIMAL(10,2) NOT NULL,
	booking_status ENUM('pending','confirmed','checked_in','checked_out','cancelled') NOT NULL DEFAULT 'pending',
	special_requests TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	KEY idx_hotel (hotel_id),
	KEY idx_traveler (traveler_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS guest_requests (
	request_id BIGINT AUTO_INCREMENT PRIMARY KEY,
	booking_id BIGINT NOT NULL,
	request_type ENUM('early_checkin','late_checkout','room_service','housekeeping','maintenance','other') NOT NULL,
	request_status ENUM('pending','in_progress','completed','declined') NOT NULL DEFAULT 'pending',
	request_details TEXT NOT NULL,
	priority ENUM('low','medium','high','urgent') NOT NULL DEFAULT 'medium',
	assigned_to BIGINT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	completed_at TIMESTAMP NULL,
	KEY idx_booking (booking_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
	}

	for _, stmt := range stmts {
		if _, err := dbh.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
