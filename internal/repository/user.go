package repository

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"portal-calma/internal/database"
	"portal-calma/internal/models"
)

func CreateUser(email, password, name, role, companyID string) (*models.PortalUser, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.PortalUser{
		Email:     email,
		Password:  string(hashedPassword),
		Name:      name,
		Role:      role,
		CompanyID: companyID,
	}
	result := database.DB.Create(user)
	return user, result.Error
}

func GetUserByEmail(ctx context.Context, email string) (*models.PortalUser, error) {
	var user models.PortalUser
	result := database.DB.WithContext(ctx).First(&user, "email = ?", email)
	return &user, result.Error
}

func GetUserByID(ctx context.Context, id int) (*models.PortalUser, error) {
	var user models.PortalUser
	result := database.DB.WithContext(ctx).First(&user, id)
	return &user, result.Error
}

func UpdateUser(ctx context.Context, userID int, name string) error {
	return database.DB.WithContext(ctx).
		Model(&models.PortalUser{}).
		Where("id = ?", userID).
		Update("name", name).Error
}

func UpdateUserPassword(ctx context.Context, userID int, newPassword string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return database.DB.WithContext(ctx).
		Model(&models.PortalUser{}).
		Where("id = ?", userID).
		Update("password", string(hashedPassword)).Error
}

func DeleteUser(ctx context.Context, userID int) error {
	return database.DB.WithContext(ctx).Delete(&models.PortalUser{}, userID).Error
}

// CheckPassword compares a candidate password against the stored hash.
func CheckPassword(user *models.PortalUser, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}
