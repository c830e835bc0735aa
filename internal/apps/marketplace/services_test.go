package marketplace

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm.Open() error = %v", err)
	}
	if err := db.AutoMigrate(&Post{}); err != nil {
		t.Fatalf("AutoMigrate() error = %v", err)
	}
	return db
}

func createPost(t *testing.T, svc *PostService, sellerID uuid.UUID, title string) *Post {
	t.Helper()
	post, err := svc.CreatePost(sellerID, "Seller", title, "Electronics", "Lightly used", "Dorm B", "0171111111", 450, []string{"https://img.example/1.jpg"})
	if err != nil {
		t.Fatalf("CreatePost() error = %v", err)
	}
	return post
}

func TestListPostsHidesSoldItems(t *testing.T) {
	db := openTestDB(t)
	svc := NewPostService(db)
	seller := uuid.New()
	buyer := uuid.New()

	sold := createPost(t, svc, seller, "Desk Lamp")
	createPost(t, svc, seller, "Office Chair")

	if _, err := svc.MarkPaymentDone(buyer, "Buyer", sold.ID); err != nil {
		t.Fatalf("MarkPaymentDone() error = %v", err)
	}

	posts, err := svc.ListPosts("", "")
	if err != nil {
		t.Fatalf("ListPosts() error = %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "Office Chair" {
		t.Fatalf("posts = %+v, want only the unsold chair", posts)
	}
}

func TestListPostsSearchIsCaseInsensitive(t *testing.T) {
	db := openTestDB(t)
	svc := NewPostService(db)
	seller := uuid.New()

	createPost(t, svc, seller, "Casio Calculator")
	createPost(t, svc, seller, "Desk Lamp")

	posts, err := svc.ListPosts("cAsIo", "")
	if err != nil {
		t.Fatalf("ListPosts() error = %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "Casio Calculator" {
		t.Fatalf("posts = %+v, want the calculator", posts)
	}
}

func TestMarkPaymentDoneRejectsOwnItem(t *testing.T) {
	db := openTestDB(t)
	svc := NewPostService(db)
	seller := uuid.New()

	post := createPost(t, svc, seller, "Desk Lamp")

	if _, err := svc.MarkPaymentDone(seller, "Seller", post.ID); !errors.Is(err, ErrOwnItem) {
		t.Fatalf("MarkPaymentDone() error = %v, want ErrOwnItem", err)
	}
}

func TestConfirmPaymentFlow(t *testing.T) {
	db := openTestDB(t)
	svc := NewPostService(db)
	seller := uuid.New()
	buyer := uuid.New()

	post := createPost(t, svc, seller, "Desk Lamp")

	// Confirmation before the buyer marks payment is rejected.
	if err := svc.ConfirmPayment(seller, post.ID); !errors.Is(err, ErrPaymentNotMarked) {
		t.Fatalf("early ConfirmPayment() error = %v, want ErrPaymentNotMarked", err)
	}

	if _, err := svc.MarkPaymentDone(buyer, "Buyer", post.ID); err != nil {
		t.Fatalf("MarkPaymentDone() error = %v", err)
	}

	// Only the seller can confirm.
	if err := svc.ConfirmPayment(buyer, post.ID); !errors.Is(err, ErrNotSeller) {
		t.Fatalf("ConfirmPayment() by buyer error = %v, want ErrNotSeller", err)
	}

	if err := svc.ConfirmPayment(seller, post.ID); err != nil {
		t.Fatalf("ConfirmPayment() error = %v", err)
	}

	if _, err := svc.GetPost(post.ID); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("GetPost() after confirm error = %v, want ErrPostNotFound", err)
	}
}

func TestDeletePostGuardChain(t *testing.T) {
	db := openTestDB(t)
	svc := NewPostService(db)
	seller := uuid.New()
	intruder := uuid.New()

	post := createPost(t, svc, seller, "Desk Lamp")

	if err := svc.DeletePost(intruder, uuid.New()); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("delete missing: error = %v, want ErrPostNotFound", err)
	}
	if err := svc.DeletePost(intruder, post.ID); !errors.Is(err, ErrNotSeller) {
		t.Fatalf("delete by non-seller: error = %v, want ErrNotSeller", err)
	}
	if err := svc.DeletePost(seller, post.ID); err != nil {
		t.Fatalf("delete by seller: error = %v", err)
	}
}
