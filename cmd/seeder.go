package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var clearData bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := initGorm(sqlxDB)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			for _, table := range []string{"rating", "mutasi", "karyawan", "unit_sub_unit", "users"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		users := []struct {
			Username string
			Name     string
			IDRoles  int
		}{
			{"hc.treg", "HC TREG Admin", 1},
			{"ish.admin", "ISH Admin", 2},
			{"witel.admin", "Witel Admin", 3},
			{"supervisor", "Outsource Supervisor", 4},
		}

		for _, u := range users {
			var exists int
			row := db.Raw("SELECT 1 FROM users WHERE username = ?", u.Username).Row()
			if err := row.Scan(&exists); err == nil {
				fmt.Println("user already exists:", u.Username)
				continue
			}

			if err := db.Exec(
				"INSERT INTO users (username, name, password_hash, id_roles, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, true, now(), now())",
				u.Username, u.Name, string(hash), u.IDRoles).Error; err != nil {
				log.Fatalf("failed to insert user %s: %v", u.Username, err)
			}
			fmt.Println("Seeded user:", u.Username)
		}

		units := []struct {
			Unit    string
			SubUnit string
		}{
			{"WITEL JAKARTA", "JAKARTA PUSAT"},
			{"WITEL JAKARTA", "JAKARTA SELATAN"},
			{"WITEL JAKARTA", "JAKARTA TIMUR"},
			{"WITEL BANDUNG", "BANDUNG KOTA"},
			{"WITEL BANDUNG", "CIMAHI"},
			{"WITEL SEMARANG", "SEMARANG KOTA"},
			{"WITEL SURABAYA", "SURABAYA SELATAN"},
			{"WITEL SURABAYA", "SURABAYA UTARA"},
		}

		for _, u := range units {
			var exists int
			row := db.Raw("SELECT 1 FROM unit_sub_unit WHERE unit = ? AND sub_unit = ?", u.Unit, u.SubUnit).Row()
			if err := row.Scan(&exists); err == nil {
				continue
			}

			if err := db.Exec(
				"INSERT INTO unit_sub_unit (unit, sub_unit, created_at) VALUES (?, ?, now())",
				u.Unit, u.SubUnit).Error; err != nil {
				log.Fatalf("failed to insert unit %s/%s: %v", u.Unit, u.SubUnit, err)
			}
		}
		fmt.Println("Seeded unit reference rows")

		karyawan := []struct {
			Perner         string
			Nama           string
			JenisKelamin   string
			Unit           string
			SubUnit        string
			Kota           string
			Posisi         string
			SumberAnggaran string
			GajiPokok      float64
			TunjanganOps   float64
			TanggalLahir   string
			Bergabung      string
		}{
			{"10000001", "Budi Santoso", "Laki-laki", "WITEL JAKARTA", "JAKARTA PUSAT", "Jakarta", "Teknisi", "OPEX", 4500000, 500000, "1992-03-14", "2018-06-01"},
			{"10000002", "Siti Rahayu", "Perempuan", "WITEL JAKARTA", "JAKARTA SELATAN", "Jakarta", "Admin Gudang", "CAPEX", 4200000, 400000, "1995-11-02", "2020-01-15"},
			{"10000003", "Agus Wijaya", "Laki-laki", "WITEL BANDUNG", "BANDUNG KOTA", "Bandung", "Teknisi", "OPEX", 4300000, 450000, "1988-07-21", "2016-09-12"},
			{"10000004", "Dewi Lestari", "Perempuan", "WITEL SEMARANG", "SEMARANG KOTA", "Semarang", "Customer Service", "OPEX", 4100000, 350000, "1998-01-30", "2021-04-05"},
			{"10000005", "Rizky Pratama", "Laki-laki", "WITEL SURABAYA", "SURABAYA SELATAN", "Surabaya", "Teknisi", "CAPEX", 4400000, 500000, "1990-05-08", "2017-02-20"},
		}

		for _, k := range karyawan {
			var exists int
			row := db.Raw("SELECT 1 FROM karyawan WHERE perner = ?", k.Perner).Row()
			if err := row.Scan(&exists); err == nil {
				continue
			}

			gajiKotor := k.GajiPokok + k.TunjanganOps
			if err := db.Exec(
				`INSERT INTO karyawan (perner, nama, status_karyawan, jenis_kelamin, status_pernikahan, jumlah_anak,
					posisi_pekerjaan, kategori_posisi, unit, sub_unit, kota, nik_atasan, nama_atasan,
					sumber_anggaran, skema_umk, gaji_pokok, tunjangan_operasional, take_home_pay, gaji_kotor,
					tanggal_lahir, bergabung_sejak, created_at, updated_at)
				VALUES (?, ?, 'Aktif', ?, 'Menikah', 1, ?, 'Lapangan', ?, ?, ?, '880001', 'Joko Susilo',
					?, 'UMK Kota', ?, ?, ?, ?, ?, ?, now(), now())`,
				k.Perner, k.Nama, k.JenisKelamin, k.Posisi, k.Unit, k.SubUnit, k.Kota,
				k.SumberAnggaran, k.GajiPokok, k.TunjanganOps, gajiKotor, gajiKotor,
				k.TanggalLahir, k.Bergabung).Error; err != nil {
				log.Fatalf("failed to insert karyawan %s: %v", k.Perner, err)
			}
			fmt.Println("Seeded karyawan:", k.Perner, k.Nama)
		}

		fmt.Println("Seeding complete")
	},
}

func init() {
	seedCmd.Flags().BoolVar(&clearData, "clear", false, "Clear existing data before seeding")
}
