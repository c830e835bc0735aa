package marketplace

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrNotSeller        = errors.New("not the seller of this post")
	ErrOwnItem          = errors.New("cannot buy your own item")
	ErrPaymentNotMarked = errors.New("payment has not been marked as done by the buyer")
)

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// CreatePost persists a post owned by the caller.
func (s *PostService) CreatePost(sellerID uuid.UUID, sellerName, title, category, description, location, phoneNumber string, price int, images []string) (*Post, error) {
	imgJSON, err := json.Marshal(images)
	if err != nil {
		return nil, err
	}

	post := Post{
		ID:            uuid.New(),
		SellerID:      sellerID,
		SellerName:    sellerName,
		Title:         title,
		Category:      category,
		Description:   description,
		Images:        datatypes.JSON(imgJSON),
		Location:      location,
		Price:         price,
		PhoneNumber:   phoneNumber,
		PaymentStatus: PaymentPending,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListPosts returns pending posts, newest first, with optional
// case-insensitive title search and category filter.
func (s *PostService) ListPosts(search, category string) ([]Post, error) {
	query := s.db.Where("payment_status = ?", PaymentPending)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var posts []Post
	if err := query.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// MyPosts returns the caller's posts regardless of payment status.
func (s *PostService) MyPosts(sellerID uuid.UUID) ([]Post, error) {
	var posts []Post
	if err := s.db.Where("seller_id = ?", sellerID).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostService) GetPost(postID uuid.UUID) (*Post, error) {
	var post Post
	if err := s.db.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// DeletePost removes a post after the existence-then-ownership guard.
func (s *PostService) DeletePost(userID, postID uuid.UUID) error {
	post, err := s.GetPost(postID)
	if err != nil {
		return err
	}

	if post.SellerID != userID {
		return ErrNotSeller
	}

	return s.db.Delete(post).Error
}

// MarkPaymentDone records the buyer on a post and flips its payment status.
// A seller cannot buy their own item.
func (s *PostService) MarkPaymentDone(buyerID uuid.UUID, buyerName string, postID uuid.UUID) (*Post, error) {
	post, err := s.GetPost(postID)
	if err != nil {
		return nil, err
	}

	if post.SellerID == buyerID {
		return nil, ErrOwnItem
	}

	updates := map[string]interface{}{
		"payment_status": PaymentDone,
		"buyer_id":       buyerID,
		"buyer_name":     buyerName,
	}
	if err := s.db.Model(post).Updates(updates).Error; err != nil {
		return nil, err
	}

	post.PaymentStatus = PaymentDone
	post.BuyerID = &buyerID
	post.BuyerName = buyerName
	return post, nil
}

// ConfirmPayment is seller-only and requires the buyer to have marked
// payment first; the sold post is then removed from active listings.
func (s *PostService) ConfirmPayment(sellerID, postID uuid.UUID) error {
	post, err := s.GetPost(postID)
	if err != nil {
		return err
	}

	if post.SellerID != sellerID {
		return ErrNotSeller
	}
	if post.PaymentStatus != PaymentDone {
		return ErrPaymentNotMarked
	}

	return s.db.Delete(post).Error
}
