package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/nashriel/secureBank/config"
	"github.com/nashriel/secureBank/database"
	"github.com/nashriel/secureBank/models"
	ledgerService "github.com/nashriel/secureBank/services/ledger"
	"github.com/nashriel/secureBank/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var firstNames = []string{"Aarav", "Vivaan", "Diya", "Ishaan", "Meera", "Rohan", "Ananya", "Kabir", "Sara", "Dev"}
var lastNames = []string{"Sharma", "Verma", "Patel", "Reddy", "Iyer", "Khan", "Gupta", "Nair", "Singh", "Das"}

// Seeds the database with demo users, accounts and ledger activity.
// Run with: go run ./scripts
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db
	svc := ledgerService.New(db)

	password, err := bcrypt.GenerateFromPassword([]byte("Password@123"), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	for i := 0; i < 10; i++ {
		first := firstNames[rand.Intn(len(firstNames))]
		last := lastNames[rand.Intn(len(lastNames))]
		username := fmt.Sprintf("%s%s%d", first, last, rand.Intn(1000))

		user := models.User{
			FullName: first + " " + last,
			Email:    fmt.Sprintf("%s@example.com", username),
			Username: username,
			Phone:    fmt.Sprintf("9%09d", rand.Intn(1000000000)),
			Password: string(password),
			IsAdmin:  i == 0,
		}

		var account models.Account
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			account = models.Account{
				UserID:        user.ID,
				AccountNumber: utils.GenerateAccountNumber(),
			}
			if err := tx.Create(&account).Error; err != nil {
				return err
			}
			upi := models.Upi{AccountID: account.ID, UpiID: utils.GenerateUpiID(user.Username), Verified: true}
			return tx.Create(&upi).Error
		})
		if err != nil {
			log.Printf("Skipping user %s: %v", username, err)
			continue
		}

		// Random ledger activity
		for j := 0; j < 3+rand.Intn(5); j++ {
			amount := float64(100 + rand.Intn(9900))
			if _, err := svc.Deposit(account.ID, amount, "Seed deposit"); err != nil {
				log.Printf("Seed deposit failed for %s: %v", username, err)
			}
		}
		if _, err := svc.Withdraw(account.ID, float64(50+rand.Intn(200)), "Seed withdrawal"); err != nil {
			log.Printf("Seed withdrawal failed for %s: %v", username, err)
		}

		log.Printf("Seeded user %s (account %s)", username, account.AccountNumber)
	}

	log.Println("Seeding complete.")
}
