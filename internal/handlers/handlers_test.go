package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/SscSPs/bizledger/internal/handlers"
	"github.com/SscSPs/bizledger/internal/middleware"
	"github.com/SscSPs/bizledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testSecret = "test-secret-key-that-is-long-enough"
	testIssuer = "bizledger-test"
)

type HandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockAccountService   *MockAccountService
	mockJournalService   *MockJournalService
	mockReportingService *MockReportingService
	businessID           string
	userID               string
}

func (suite *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterValidators())
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))

	suite.mockAccountService = new(MockAccountService)
	suite.mockJournalService = new(MockJournalService)
	suite.mockReportingService = new(MockReportingService)
	suite.businessID = uuid.NewString()
	suite.userID = uuid.NewString()

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(testSecret, testIssuer))
	business := v1.Group("/businesses/:"+middleware.BusinessIDParam, middleware.RequireBusinessAccess())
	handlers.RegisterAccountRoutes(business, suite.mockAccountService, suite.mockReportingService)
	handlers.RegisterJournalRoutes(business, suite.mockJournalService)
	handlers.RegisterReportingRoutes(business, suite.mockReportingService)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.mockAccountService.AssertExpectations(suite.T())
	suite.mockJournalService.AssertExpectations(suite.T())
	suite.mockReportingService.AssertExpectations(suite.T())
}

// generateTestToken signs a token for userID granting the given businesses.
func (suite *HandlerTestSuite) generateTestToken(userID string, businessIDs ...string) string {
	claims := middleware.LedgerClaims{
		BusinessIDs: businessIDs,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	return suite.doAs(suite.generateTestToken(suite.userID, suite.businessID), method, path, body)
}

func (suite *HandlerTestSuite) doAs(token, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	url := fmt.Sprintf("/api/v1/businesses/%s%s", suite.businessID, path)
	req, _ := http.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decodeError(w *httptest.ResponseRecorder) handlers.ErrorResponse {
	var res handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func (suite *HandlerTestSuite) postedEntry(id string) *domain.JournalEntry {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return &domain.JournalEntry{
		EntryID:         id,
		BusinessID:      suite.businessID,
		EntryDate:       now,
		ReferenceNumber: "JE-2025-0001",
		IsPosted:        true,
		PostedAt:        &now,
		Lines: []domain.JournalLine{
			{LineID: "l1", LineNo: 1, AccountID: "cash", DebitAmount: decimal.NewFromInt(500)},
			{LineID: "l2", LineNo: 2, AccountID: "capital", CreditAmount: decimal.NewFromInt(500)},
		},
	}
}

// --- Auth ---

func (suite *HandlerTestSuite) TestMissingToken_Unauthorized() {
	w := suite.doAs("", http.MethodGet, "/accounts", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestForeignBusiness_Forbidden() {
	token := suite.generateTestToken(suite.userID, uuid.NewString())
	w := suite.doAs(token, http.MethodGet, "/accounts", nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "ListAccounts")
}

func (suite *HandlerTestSuite) TestWildcardGrant_Allowed() {
	suite.mockAccountService.On("ListAccounts", mock.Anything, suite.businessID, dto.ListAccountsParams{}).
		Return([]domain.Account{}, nil).Once()

	w := suite.doAs(suite.generateTestToken(suite.userID, "*"), http.MethodGet, "/accounts", nil)
	suite.Equal(http.StatusOK, w.Code)
}

// --- Accounts ---

func (suite *HandlerTestSuite) TestCreateAccount_Success() {
	req := dto.CreateAccountRequest{Code: "1000", Name: "Cash", AccountType: domain.Asset}
	created := &domain.Account{AccountID: uuid.NewString(), BusinessID: suite.businessID, Code: "1000", Name: "Cash", AccountType: domain.Asset, IsActive: true}
	suite.mockAccountService.On("CreateAccount", mock.Anything, suite.businessID, req, suite.userID).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/accounts", req)

	suite.Equal(http.StatusCreated, w.Code)
	var res dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(created.AccountID, res.AccountID)
	suite.Equal("1000", res.Code)
}

func (suite *HandlerTestSuite) TestCreateAccount_BadCodeShape() {
	for _, code := range []string{"100", "8000", "10a0", "0100"} {
		w := suite.do(http.MethodPost, "/accounts", dto.CreateAccountRequest{Code: code, Name: "Cash", AccountType: domain.Asset})
		suite.Equal(http.StatusBadRequest, w.Code, code)
	}
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount")
}

func (suite *HandlerTestSuite) TestCreateAccount_DuplicateCode() {
	req := dto.CreateAccountRequest{Code: "1000", Name: "Cash", AccountType: domain.Asset}
	suite.mockAccountService.On("CreateAccount", mock.Anything, suite.businessID, req, suite.userID).
		Return(nil, fmt.Errorf("%w: account code 1000 already exists", apperrors.ErrDuplicate)).Once()

	w := suite.do(http.MethodPost, "/accounts", req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(suite.decodeError(w).Error, "1000")
}

func (suite *HandlerTestSuite) TestDeleteAccount_BankLinkedConflict() {
	suite.mockAccountService.On("DeleteAccount", mock.Anything, suite.businessID, "acc-bank", suite.userID).
		Return(fmt.Errorf("%w: account is linked to a bank account", apperrors.ErrConflict)).Once()

	w := suite.do(http.MethodDelete, "/accounts/acc-bank", nil)
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestDeactivateAccount_NoContent() {
	suite.mockAccountService.On("DeactivateAccount", mock.Anything, suite.businessID, "acc-1", suite.userID).Return(nil).Once()

	w := suite.do(http.MethodPost, "/accounts/acc-1/deactivate", nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestGetAccount_NotFound() {
	suite.mockAccountService.On("GetAccountByID", mock.Anything, suite.businessID, "missing").
		Return(nil, fmt.Errorf("%w: account missing", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/accounts/missing", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestGetAccountBalance() {
	acc := &domain.Account{AccountID: "acc-cash", Code: "1000", AccountType: domain.Asset}
	suite.mockAccountService.On("GetAccountByID", mock.Anything, suite.businessID, "acc-cash").Return(acc, nil).Once()
	suite.mockReportingService.On("AccountBalance", mock.Anything, suite.businessID, "acc-cash").
		Return(decimal.RequireFromString("4800.00"), nil).Once()

	w := suite.do(http.MethodGet, "/accounts/acc-cash/balance", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.AccountBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("1000", res.Code)
	suite.True(decimal.NewFromInt(4800).Equal(res.Balance))
}

func (suite *HandlerTestSuite) TestCreateDefaultChart_ReportsSkipped() {
	suite.mockAccountService.On("CreateDefaultChart", mock.Anything, suite.businessID, suite.userID).
		Return([]domain.Account{{AccountID: "a1", Code: "1100"}}, []string{"1000"}, nil).Once()

	w := suite.do(http.MethodPost, "/accounts/defaults", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.SeedChartResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Len(res.Created, 1)
	suite.Equal([]string{"1000"}, res.Skipped)
}

func (suite *HandlerTestSuite) TestRemoveBankLinkedAccounts() {
	out := &dto.BankAccountCascadeResponse{Deleted: []string{"a1"}, Deactivated: []string{"a2"}}
	suite.mockAccountService.On("RemoveBankLinkedAccounts", mock.Anything, suite.businessID, "bank-9", suite.userID).Return(out, nil).Once()

	w := suite.do(http.MethodDelete, "/bank-accounts/bank-9/accounts", nil)
	suite.Equal(http.StatusOK, w.Code)
}

// --- Journal entries ---

func (suite *HandlerTestSuite) TestCreateJournalEntry_Unbalanced() {
	req := dto.CreateJournalEntryRequest{
		EntryDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Lines: []dto.JournalLineRequest{
			{AccountID: "cash", DebitAmount: decimal.RequireFromString("100.00")},
			{AccountID: "capital", CreditAmount: decimal.RequireFromString("99.50")},
		},
		Post: true,
	}
	suite.mockJournalService.On("CreateJournalEntry", mock.Anything, suite.businessID, mock.AnythingOfType("dto.CreateJournalEntryRequest"), suite.userID).
		Return(nil, apperrors.NewBalanceError(decimal.RequireFromString("100.00"), decimal.RequireFromString("99.50"))).Once()

	w := suite.do(http.MethodPost, "/journal-entries", req)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	res := suite.decodeError(w)
	suite.Equal("BALANCE", res.Category)
	suite.Equal("UNBALANCED", res.Kind)
	suite.Require().NotNil(res.Difference)
	suite.True(decimal.RequireFromString("0.50").Equal(*res.Difference))
}

func (suite *HandlerTestSuite) TestCreateJournalEntry_StructuralIsBadRequest() {
	req := dto.CreateJournalEntryRequest{EntryDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)}
	suite.mockJournalService.On("CreateJournalEntry", mock.Anything, suite.businessID, mock.AnythingOfType("dto.CreateJournalEntryRequest"), suite.userID).
		Return(nil, apperrors.NewStructuralError(apperrors.KindNoLines, 0, "entry has no lines")).Once()

	w := suite.do(http.MethodPost, "/journal-entries", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	res := suite.decodeError(w)
	suite.Equal("STRUCTURAL", res.Category)
	suite.Equal("NO_LINES", res.Kind)
	suite.Nil(res.Difference)
}

func (suite *HandlerTestSuite) TestCreateJournalEntry_MissingDate() {
	w := suite.do(http.MethodPost, "/journal-entries", map[string]any{"lines": []any{}})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockJournalService.AssertNotCalled(suite.T(), "CreateJournalEntry")
}

func (suite *HandlerTestSuite) TestPostJournalEntry_InventoryFlow() {
	flowErr := apperrors.NewInventoryFlowError(apperrors.RuleInsufficientFinishedGoods, "not enough finished goods", "fg")
	flowErr.Balance = decimal.RequireFromString("300.00")
	flowErr.Required = decimal.RequireFromString("500.00")
	suite.mockJournalService.On("PostJournalEntry", mock.Anything, suite.businessID, "e1", suite.userID).
		Return(nil, flowErr).Once()

	w := suite.do(http.MethodPost, "/journal-entries/e1/post", nil)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	res := suite.decodeError(w)
	suite.Equal("INVENTORY_FLOW", res.Category)
	suite.Equal("INSUFFICIENT_FINISHED_GOODS", res.Rule)
	suite.Equal([]string{"fg"}, res.AccountIDs)
	suite.Require().NotNil(res.Balance)
	suite.Require().NotNil(res.Required)
	suite.True(decimal.NewFromInt(300).Equal(*res.Balance))
	suite.True(decimal.NewFromInt(500).Equal(*res.Required))
	suite.Nil(res.Difference)
}

func (suite *HandlerTestSuite) TestPostJournalEntry_InsufficientRawMaterialsAtZeroBalance() {
	flowErr := apperrors.NewInventoryFlowError(apperrors.RuleInsufficientRawMaterials, "not enough raw materials", "rm")
	flowErr.Balance = decimal.Zero
	flowErr.Required = decimal.RequireFromString("200.00")
	suite.mockJournalService.On("PostJournalEntry", mock.Anything, suite.businessID, "e1", suite.userID).
		Return(nil, flowErr).Once()

	w := suite.do(http.MethodPost, "/journal-entries/e1/post", nil)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Contains(w.Body.String(), `"balance":"0"`)
	res := suite.decodeError(w)
	suite.Equal("INSUFFICIENT_RAW_MATERIALS", res.Rule)
	suite.Require().NotNil(res.Required)
	suite.True(decimal.NewFromInt(200).Equal(*res.Required))
}

func (suite *HandlerTestSuite) TestPostJournalEntry_OrderingRuleHasNoAmounts() {
	suite.mockJournalService.On("PostJournalEntry", mock.Anything, suite.businessID, "e1", suite.userID).
		Return(nil, apperrors.NewInventoryFlowError(apperrors.RuleWIPWithoutRawMaterialsCredit, "credit raw materials", "wip", "rm")).Once()

	w := suite.do(http.MethodPost, "/journal-entries/e1/post", nil)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	res := suite.decodeError(w)
	suite.Nil(res.Balance)
	suite.Nil(res.Required)
}

func (suite *HandlerTestSuite) TestPostJournalEntry_AlreadyPosted() {
	suite.mockJournalService.On("PostJournalEntry", mock.Anything, suite.businessID, "e1", suite.userID).
		Return(nil, fmt.Errorf("%w: entry e1 is already posted", apperrors.ErrConflict)).Once()

	w := suite.do(http.MethodPost, "/journal-entries/e1/post", nil)
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestUpdateJournalEntry_OtherUsersDraft() {
	desc := "edited"
	req := dto.UpdateJournalEntryRequest{Description: &desc}
	suite.mockJournalService.On("UpdateDraftJournalEntry", mock.Anything, suite.businessID, "e1", req, suite.userID).
		Return(nil, fmt.Errorf("%w: draft belongs to another user", apperrors.ErrForbidden)).Once()

	w := suite.do(http.MethodPut, "/journal-entries/e1", req)
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlerTestSuite) TestReverseJournalEntry_EmptyBody() {
	reversal := suite.postedEntry("e2")
	original := "e1"
	reversal.ReversesEntryID = &original
	suite.mockJournalService.On("ReverseJournalEntry", mock.Anything, suite.businessID, "e1", dto.ReverseJournalEntryRequest{}, suite.userID).
		Return(reversal, nil).Once()

	w := suite.do(http.MethodPost, "/journal-entries/e1/reverse", nil)

	suite.Equal(http.StatusCreated, w.Code)
	var res dto.JournalEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Require().NotNil(res.ReversesEntryID)
	suite.Equal("e1", *res.ReversesEntryID)
	suite.Equal(domain.Posted, res.Status)
}

func (suite *HandlerTestSuite) TestDeleteJournalEntry() {
	suite.mockJournalService.On("DeleteDraftJournalEntry", mock.Anything, suite.businessID, "e1", suite.userID).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/journal-entries/e1", nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestListJournalEntries_Paged() {
	next := "token-2"
	page := &dto.ListJournalEntriesResponse{
		Entries:   dto.ToJournalEntryResponses([]domain.JournalEntry{*suite.postedEntry("e1")}),
		NextToken: &next,
	}
	suite.mockJournalService.On("ListJournalEntries", mock.Anything, suite.businessID,
		dto.ListJournalEntriesParams{Limit: 1, NextToken: "token-1"}).Return(page, nil).Once()

	w := suite.do(http.MethodGet, "/journal-entries?limit=1&nextToken=token-1", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ListJournalEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Len(res.Entries, 1)
	suite.Require().NotNil(res.NextToken)
	suite.Equal(next, *res.NextToken)
}

func (suite *HandlerTestSuite) TestListJournalEntries_LimitTooLarge() {
	w := suite.do(http.MethodGet, "/journal-entries?limit=1000", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockJournalService.AssertNotCalled(suite.T(), "ListJournalEntries")
}

func (suite *HandlerTestSuite) TestServiceFailure_IsInternal() {
	suite.mockJournalService.On("GetJournalEntry", mock.Anything, suite.businessID, "e1").
		Return(nil, errors.New("connection reset")).Once()

	w := suite.do(http.MethodGet, "/journal-entries/e1", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to retrieve journal entry", suite.decodeError(w).Error)
}

// --- Reports ---

func (suite *HandlerTestSuite) TestTrialBalance_AsOf() {
	report := &domain.TrialBalanceReport{
		Rows: []domain.TrialBalanceRow{
			{AccountID: "cash", AccountCode: "1000", AccountType: domain.Asset, DebitBalance: decimal.NewFromInt(500), NetBalance: decimal.NewFromInt(500)},
			{AccountID: "capital", AccountCode: "3000", AccountType: domain.Equity, CreditBalance: decimal.NewFromInt(500), NetBalance: decimal.NewFromInt(-500)},
		},
		TotalDebit:  decimal.NewFromInt(500),
		TotalCredit: decimal.NewFromInt(500),
		IsBalanced:  true,
	}
	suite.mockReportingService.On("TrialBalance", mock.Anything, suite.businessID, mock.MatchedBy(func(asOf *time.Time) bool {
		return asOf != nil && asOf.Format("2006-01-02") == "2025-03-31" && asOf.Hour() == 23
	})).Return(report, nil).Once()

	w := suite.do(http.MethodGet, "/reports/trial-balance?asOf=2025-03-31", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.TrialBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.True(res.IsBalanced)
	suite.Len(res.Rows, 2)
}

func (suite *HandlerTestSuite) TestTrialBalance_BadDate() {
	w := suite.do(http.MethodGet, "/reports/trial-balance?asOf=31-03-2025", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportingService.AssertNotCalled(suite.T(), "TrialBalance")
}

func (suite *HandlerTestSuite) TestProfitAndLoss_EndBeforeStart() {
	w := suite.do(http.MethodGet, "/reports/profit-and-loss?from=2025-03-31&to=2025-03-01", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportingService.AssertNotCalled(suite.T(), "ProfitAndLoss")
}

func (suite *HandlerTestSuite) TestProfitAndLoss_Period() {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	report := &domain.PAndLReport{NetProfit: decimal.NewFromInt(250)}
	suite.mockReportingService.On("ProfitAndLoss", mock.Anything, suite.businessID, from, mock.AnythingOfType("time.Time")).
		Return(report, nil).Once()

	w := suite.do(http.MethodGet, "/reports/profit-and-loss?from=2025-03-01&to=2025-03-31", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ProfitAndLossResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("2025-03-01", res.FromDate)
	suite.True(decimal.NewFromInt(250).Equal(res.NetProfit))
}

func (suite *HandlerTestSuite) TestIntegrity() {
	report := &domain.IntegrityReport{BusinessID: suite.businessID, TrialBalanceBalanced: true}
	suite.mockReportingService.On("CheckBooks", mock.Anything, suite.businessID).Return(report, nil).Once()

	w := suite.do(http.MethodGet, "/reports/integrity", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res domain.IntegrityReport
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.True(res.Healthy())
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func TestRegisterRoutes_HealthAndSwagger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	services := &portssvc.ServiceContainer{
		Account:   new(MockAccountService),
		Journal:   new(MockJournalService),
		Reporting: new(MockReportingService),
	}
	if err := handlers.RegisterRoutes(r, &config.Config{JWTSecret: testSecret}, services); err != nil {
		t.Fatalf("RegisterRoutes: %v", err)
	}

	for path, want := range map[string]int{
		"/health":                        http.StatusOK,
		"/api/v1/businesses/b1/accounts": http.StatusUnauthorized,
	} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)
		if w.Code != want {
			t.Errorf("GET %s: got %d, want %d", path, w.Code, want)
		}
	}
}
