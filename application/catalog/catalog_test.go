package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	appcatalog "github.com/muhammadheryan/humidor-club/application/catalog"
	"github.com/muhammadheryan/humidor-club/constant"
	catalogmocks "github.com/muhammadheryan/humidor-club/mocks/repository/catalog"
	humidormocks "github.com/muhammadheryan/humidor-club/mocks/repository/humidor"
	txmocks "github.com/muhammadheryan/humidor-club/mocks/repository/tx"
	"github.com/muhammadheryan/humidor-club/model"
	cerr "github.com/muhammadheryan/humidor-club/utils/errors"
	"github.com/stretchr/testify/mock"
)

type fields struct {
	txRepo      *txmocks.TxRepository
	catalogRepo *catalogmocks.CatalogRepository
	humidorRepo *humidormocks.HumidorRepository
}

func TestCatalogApp_ResolveCigar(t *testing.T) {
	brand := &model.Brand{ID: 1, Name: "Padron"}
	line := &model.Line{ID: 2, BrandID: 1, Name: "1964 Anniversary"}
	cigar := &model.Cigar{ID: 3, LineID: 2, Name: "Exclusivo", Vitola: "Robusto"}

	tests := []struct {
		name        string
		userID      uint64
		req         *model.ResolveCigarRequest
		mockCall    func(f fields)
		wantCreated bool
		wantItem    bool
		wantErr     bool
		errCode     constant.ErrorType
	}{
		{
			name:   "success: new cigar with images and humidor row",
			userID: 1,
			req: &model.ResolveCigarRequest{
				BrandName: " Padron ", LineName: "1964 Anniversary", CigarName: "Exclusivo", Vitola: "Robusto",
				ImageURLs: []string{"https://img/a.jpg"}, AddToHumidor: true, Quantity: 0,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.catalogRepo.On("FindOrCreateBrandTx", mock.Anything, tx, "Padron").Return(brand, nil).Once()
				f.catalogRepo.On("FindOrCreateLineTx", mock.Anything, tx, uint64(1), "1964 Anniversary").Return(line, nil).Once()
				f.catalogRepo.On("FindOrCreateCigarTx", mock.Anything, tx, mock.MatchedBy(func(c *model.Cigar) bool {
					return c.LineID == 2 && c.Name == "Exclusivo" && c.Vitola == "Robusto"
				})).Return(cigar, true, nil).Once()
				f.catalogRepo.On("ReplaceCigarImagesTx", mock.Anything, tx, uint64(3), []string{"https://img/a.jpg"}).Return(nil).Once()
				f.humidorRepo.On("CreateTx", mock.Anything, tx, mock.MatchedBy(func(h *model.HumidorItem) bool {
					return h.UserID == 1 && h.CigarID == 3 && h.Quantity == 1
				})).Return(&model.HumidorItem{ID: 8, UserID: 1, CigarID: 3, Quantity: 1}, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.catalogRepo.On("GetCigar", mock.Anything, uint64(3)).Return(&model.CigarDetail{
					Cigar: *cigar, LineName: line.Name, BrandID: 1, BrandName: "Padron", ImageURLs: []string{"https://img/a.jpg"},
				}, nil).Once()
			},
			wantCreated: true,
			wantItem:    true,
		},
		{
			name:   "success: existing cigar keeps its images",
			userID: 1,
			req: &model.ResolveCigarRequest{
				BrandName: "Padron", LineName: "1964 Anniversary", CigarName: "Exclusivo", Vitola: "Robusto",
				ImageURLs: []string{"https://img/other.jpg"},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.catalogRepo.On("FindOrCreateBrandTx", mock.Anything, tx, "Padron").Return(brand, nil).Once()
				f.catalogRepo.On("FindOrCreateLineTx", mock.Anything, tx, uint64(1), "1964 Anniversary").Return(line, nil).Once()
				f.catalogRepo.On("FindOrCreateCigarTx", mock.Anything, tx, mock.Anything).Return(cigar, false, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				// reload failure still answers from the resolved rows
				f.catalogRepo.On("GetCigar", mock.Anything, uint64(3)).Return(nil, errors.New("cache miss and db timeout")).Once()
			},
		},
		{
			name:   "error: line lookup fails and the tx is rolled back",
			userID: 1,
			req:    &model.ResolveCigarRequest{BrandName: "Padron", LineName: "1964", CigarName: "Exclusivo"},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.catalogRepo.On("FindOrCreateBrandTx", mock.Anything, tx, "Padron").Return(brand, nil).Once()
				f.catalogRepo.On("FindOrCreateLineTx", mock.Anything, tx, uint64(1), "1964").Return(nil, errors.New("deadlock")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name:    "error: blank names",
			userID:  1,
			req:     &model.ResolveCigarRequest{BrandName: " ", LineName: "x", CigarName: "y"},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:    "error: anonymous caller",
			req:     &model.ResolveCigarRequest{BrandName: "a", LineName: "b", CigarName: "c"},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				txRepo:      txmocks.NewTxRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
				humidorRepo: humidormocks.NewHumidorRepository(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appcatalog.NewCatalogApp(f.txRepo, f.catalogRepo, f.humidorRepo)

			got, err := app.ResolveCigar(context.Background(), tt.userID, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveCigar() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Created != tt.wantCreated {
				t.Fatalf("created = %v, want %v", got.Created, tt.wantCreated)
			}
			if (got.HumidorItem != nil) != tt.wantItem {
				t.Fatalf("humidor item = %+v, want present %v", got.HumidorItem, tt.wantItem)
			}
			if got.Cigar.BrandName != "Padron" || got.Cigar.ID != 3 {
				t.Fatalf("unexpected cigar %+v", got.Cigar)
			}
		})
	}
}

func TestCatalogApp_SearchCigars_Defaults(t *testing.T) {
	repo := catalogmocks.NewCatalogRepository(t)
	repo.On("SearchCigars", mock.Anything, "padron", 1, 20).Return([]model.CigarDetail{}, int64(0), nil).Once()

	app := appcatalog.NewCatalogApp(txmocks.NewTxRepository(t), repo, humidormocks.NewHumidorRepository(t))
	got, err := app.SearchCigars(context.Background(), " padron ", 0, 0)
	if err != nil {
		t.Fatalf("SearchCigars() error = %v", err)
	}
	if got.Page != 1 || got.PerPage != 20 {
		t.Fatalf("unexpected paging %+v", got)
	}
}

func TestCatalogApp_GetCigar_NotFound(t *testing.T) {
	repo := catalogmocks.NewCatalogRepository(t)
	repo.On("GetCigar", mock.Anything, uint64(5)).Return(nil, nil).Once()

	app := appcatalog.NewCatalogApp(txmocks.NewTxRepository(t), repo, humidormocks.NewHumidorRepository(t))
	_, err := app.GetCigar(context.Background(), 5)
	if !cerr.IsType(err, constant.ErrNotFound) {
		t.Fatalf("GetCigar() error = %v, want not found", err)
	}
}
