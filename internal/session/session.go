package session

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ndanilkin/minimarket/internal/logging"
	"github.com/ndanilkin/minimarket/internal/models"
	"github.com/ndanilkin/minimarket/internal/store"
	"github.com/ndanilkin/minimarket/internal/transport"
)

// Result is what every intent hands back to the presentational layer.
// Failures are recovered here; nothing below the controller is fatal.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func ok() Result { return Result{Success: true} }

func fail(msg string) Result { return Result{Success: false, Message: msg} }

// Session is the single active authenticated context and the navigation
// state machine gating every mutation. All store mutations go through it.
type Session struct {
	accounts *store.AccountStore
	catalog  *store.CatalogStore
	cart     *store.CartStore
	ledger   *store.Ledger

	user     *models.User
	page     Page
	selected *models.Product
}

func New(db *gorm.DB) *Session {
	return &Session{
		accounts: &store.AccountStore{DB: db},
		catalog:  &store.CatalogStore{DB: db},
		cart:     &store.CartStore{DB: db},
		ledger:   &store.Ledger{DB: db},
		page:     PageLogin,
	}
}

// Read-only state exposed to the presentational layer.

func (s *Session) User() *models.User { return s.user }

func (s *Session) Page() Page { return s.page }

func (s *Session) Selected() *models.Product { return s.selected }

func (s *Session) Catalog(ctx context.Context) ([]models.Product, error) {
	return s.catalog.List(ctx)
}

func (s *Session) CartContents(ctx context.Context) ([]models.Product, error) {
	return s.cart.Contents(ctx)
}

func (s *Session) Purchases(ctx context.Context) ([]models.Purchase, error) {
	return s.ledger.History(ctx)
}

// Accounts gives the seed loader its registration path.
func (s *Session) Accounts() *store.AccountStore { return s.accounts }

// CatalogStore gives the seed loader its product path.
func (s *Session) CatalogStore() *store.CatalogStore { return s.catalog }

// requireUser redirects to the login page when no user is active.
func (s *Session) requireUser() bool {
	if s.user != nil {
		return true
	}
	s.page = PageLogin
	return false
}

func (s *Session) Login(ctx context.Context, email, password string) Result {
	l := logging.FromContext(ctx).With("svc", "session.login", "email", email)

	user, err := s.accounts.FindByCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			l.Warn("login_failed", "reason", "invalid credentials")
			return fail("invalid credentials")
		}
		l.Error("login_failed", "error", err)
		return fail("internal error")
	}

	s.user = user
	s.page = PageBrowse
	l.Info("login_success", "user_id", user.ID)
	return ok()
}

func (s *Session) Register(ctx context.Context, email, password, username string) Result {
	l := logging.FromContext(ctx).With("svc", "session.register", "email", email)

	if _, err := s.accounts.Register(ctx, email, password, username); err != nil {
		if errors.Is(err, store.ErrDuplicateAccount) {
			l.Warn("register_failed", "reason", "account already exists")
			return fail("account already exists")
		}
		l.Error("register_failed", "error", err)
		return fail("internal error")
	}

	// No auto sign-in: the new account logs in explicitly.
	s.page = PageLogin
	l.Info("register_success")
	return ok()
}

func (s *Session) Logout(ctx context.Context) Result {
	l := logging.FromContext(ctx).With("svc", "session.logout")

	if err := s.cart.Clear(ctx); err != nil {
		l.Error("logout_cart_clear_failed", "error", err)
	}
	s.user = nil
	s.selected = nil
	s.page = PageLogin
	l.Info("logout_success")
	return ok()
}

// Navigate changes the page. Signed out, only login and register are
// reachable; signed in, unknown targets collapse to browse.
func (s *Session) Navigate(page Page) Result {
	if s.user == nil {
		if page == PageLogin || page == PageRegister {
			s.page = page
			return ok()
		}
		s.page = PageLogin
		return fail("sign in required")
	}

	if gatedPages[page] {
		s.page = page
	} else {
		s.page = PageBrowse
	}
	return ok()
}

// Select marks a product as the detail-view target and opens its page.
func (s *Session) Select(ctx context.Context, productID uint) Result {
	if !s.requireUser() {
		return fail("sign in required")
	}

	prod, err := s.catalog.Get(ctx, productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fail("product not found")
		}
		logging.FromContext(ctx).Error("select_failed", "error", err)
		return fail("internal error")
	}

	s.selected = prod
	s.page = PageProductDetail
	return ok()
}

func (s *Session) SubmitProduct(ctx context.Context, req transport.CreateProductRequest) Result {
	if !s.requireUser() {
		return fail("sign in required")
	}
	l := logging.FromContext(ctx).With("svc", "session.submit_product", "seller_id", s.user.ID)

	prod, err := s.catalog.Create(ctx, s.user.ID, req)
	if err != nil {
		l.Error("submit_product_failed", "error", err)
		return fail("internal error")
	}

	s.page = PageMyListings
	l.Info("submit_product_success", "product_id", prod.ID)
	return ok()
}

func (s *Session) EditProduct(ctx context.Context, id uint, req transport.PatchProductRequest) Result {
	if !s.requireUser() {
		return fail("sign in required")
	}
	l := logging.FromContext(ctx).With("svc", "session.edit_product", "product_id", id)

	prod, err := s.catalog.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fail("product not found")
		}
		l.Error("edit_product_failed", "error", err)
		return fail("internal error")
	}
	if prod.SellerID != s.user.ID {
		l.Warn("edit_product_denied", "seller_id", prod.SellerID, "user_id", s.user.ID)
		return fail("product not found")
	}

	if _, err := s.catalog.Patch(ctx, id, req); err != nil {
		l.Error("edit_product_failed", "error", err)
		return fail("internal error")
	}

	s.page = PageMyListings
	l.Info("edit_product_success")
	return ok()
}

func (s *Session) RemoveProduct(ctx context.Context, id uint) Result {
	if !s.requireUser() {
		return fail("sign in required")
	}
	l := logging.FromContext(ctx).With("svc", "session.remove_product", "product_id", id)

	prod, err := s.catalog.Get(ctx, id)
	if err == nil && prod.SellerID != s.user.ID {
		l.Warn("remove_product_denied", "seller_id", prod.SellerID, "user_id", s.user.ID)
		return fail("product not found")
	}
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		l.Error("remove_product_failed", "error", err)
		return fail("internal error")
	}

	// Removing an already-gone product is fine; deletion is idempotent.
	if err := s.catalog.Delete(ctx, id); err != nil {
		l.Error("remove_product_failed", "error", err)
		return fail("internal error")
	}

	s.page = PageMyListings
	l.Info("remove_product_success")
	return ok()
}

func (s *Session) CartAdd(ctx context.Context, productID uint) Result {
	if !s.requireUser() {
		return fail("sign in required")
	}

	if _, err := s.catalog.Get(ctx, productID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fail("product not found")
		}
		logging.FromContext(ctx).Error("cart_add_failed", "error", err)
		return fail("internal error")
	}

	if err := s.cart.Add(ctx, productID); err != nil {
		logging.FromContext(ctx).Error("cart_add_failed", "error", err)
		return fail("internal error")
	}
	return ok()
}

func (s *Session) CartRemove(ctx context.Context, productID uint) Result {
	if !s.requireUser() {
		return fail("sign in required")
	}

	if err := s.cart.Remove(ctx, productID); err != nil {
		logging.FromContext(ctx).Error("cart_remove_failed", "error", err)
		return fail("internal error")
	}
	return ok()
}

// Checkout turns the cart into ledger entries and clears it. An empty
// cart is a soft no-op: no records, no page change.
func (s *Session) Checkout(ctx context.Context) Result {
	if !s.requireUser() {
		return fail("sign in required")
	}
	l := logging.FromContext(ctx).With("svc", "session.checkout", "user_id", s.user.ID)

	items, err := s.cart.Contents(ctx)
	if err != nil {
		l.Error("checkout_failed", "error", err)
		return fail("internal error")
	}

	purchases, err := s.ledger.Checkout(ctx, s.user.ID, items)
	if err != nil {
		if errors.Is(err, store.ErrEmptyCart) {
			l.Info("checkout_skipped", "reason", "empty cart")
			return Result{Success: true, Message: "cart is empty"}
		}
		l.Error("checkout_failed", "error", err)
		return fail("internal error")
	}

	if err := s.cart.Clear(ctx); err != nil {
		l.Error("checkout_cart_clear_failed", "error", err)
		return fail("internal error")
	}

	s.page = PagePurchases
	l.Info("checkout_success", "purchases", len(purchases))
	return ok()
}

// UpdateProfile patches the active user's record and refreshes the
// in-session snapshot so reads reflect the change immediately.
func (s *Session) UpdateProfile(ctx context.Context, req transport.PatchProfileRequest) Result {
	if !s.requireUser() {
		return fail("sign in required")
	}
	l := logging.FromContext(ctx).With("svc", "session.update_profile", "user_id", s.user.ID)

	user, err := s.accounts.PatchProfile(ctx, s.user.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateAccount):
			l.Warn("update_profile_failed", "reason", "email taken")
			return fail("account already exists")
		case errors.Is(err, store.ErrNotFound):
			l.Warn("update_profile_failed", "reason", "user not found")
			return fail("user not found")
		default:
			l.Error("update_profile_failed", "error", err)
			return fail("internal error")
		}
	}

	s.user = user
	l.Info("update_profile_success")
	return ok()
}
